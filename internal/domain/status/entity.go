package status

import "time"

// Check is a simple client heartbeat record.
type Check struct {
	ID         string    `json:"id" db:"id"`
	ClientName string    `json:"client_name" db:"client_name"`
	Timestamp  time.Time `json:"timestamp" db:"checked_at"`
}

// CreateRequest creates a status check.
type CreateRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}
