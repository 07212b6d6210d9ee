package contact

import "time"

// Submission is a contact-form submission. Immutable once created,
// except for deletion by an admin.
type Submission struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	Phone           string    `json:"phone" db:"phone"`
	ServiceInterest string    `json:"service_interest" db:"service_interest"`
	Budget          string    `json:"budget" db:"budget"`
	Message         string    `json:"message" db:"message"`
	Timestamp       time.Time `json:"timestamp" db:"submitted_at"`
}

// CreateRequest is the public contact-form payload.
type CreateRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	ServiceInterest string `json:"service_interest" binding:"required"`
	Budget          string `json:"budget" binding:"required"`
	Message         string `json:"message" binding:"required"`
}
