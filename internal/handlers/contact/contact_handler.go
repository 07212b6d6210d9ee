package contact

import (
	"net/http"

	"nexcraft-service/internal/domain/contact"
	xerrors "nexcraft-service/internal/pkg/errors"
	"nexcraft-service/internal/pkg/response"
	"nexcraft-service/internal/service/submission"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	submissions *submission.Service
	logger      *zap.Logger
}

func NewContactHandler(svc *submission.Service, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{submissions: svc, logger: logger}
}

// Create accepts a public contact-form submission.
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.submissions.CreateContact(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create contact submission", zap.Error(err))
		response.Internal(c, "Failed to submit contact form")
		return
	}

	c.JSON(http.StatusOK, sub)
}

// List returns all submissions, newest first (protected).
func (h *ContactHandler) List(c *gin.Context) {
	submissions, err := h.submissions.ListContacts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list contact submissions", zap.Error(err))
		response.Internal(c, "Failed to fetch contact submissions")
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// Delete removes a submission by id (protected).
func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.submissions.DeleteContact(c.Request.Context(), id); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "Contact not found")
			return
		}
		h.logger.Error("failed to delete contact submission",
			zap.String("submission_id", id),
			zap.Error(err),
		)
		response.Internal(c, "Failed to delete contact")
		return
	}

	response.Message(c, "Contact deleted successfully")
}
