package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error bodies use the {"detail": ...} shape the site frontend expects.
type errorBody struct {
	Detail string `json:"detail"`
}

// Error aborts the request and sends a standardized error response.
func Error(c *gin.Context, code int, detail string) {
	c.Abort()
	c.JSON(code, errorBody{Detail: detail})
}

// Unauthorized sends the uniform credential-failure response. The body
// never reveals which part of the authentication check failed.
func Unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	Error(c, http.StatusUnauthorized, "Could not validate credentials")
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// Internal sends an opaque 500; storage-engine details never leak.
func Internal(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}

// Message sends a simple {"message": ...} success body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
