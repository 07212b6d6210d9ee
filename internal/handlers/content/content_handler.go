package content

import (
	"net/http"

	"nexcraft-service/internal/domain/content"
	"nexcraft-service/internal/pkg/response"
	contentService "nexcraft-service/internal/service/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContentHandler struct {
	content *contentService.Service
	logger  *zap.Logger
}

func NewContentHandler(svc *contentService.Service, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{content: svc, logger: logger}
}

// Get serves the website content document, persisted or default.
func (h *ContentHandler) Get(c *gin.Context) {
	doc, err := h.content.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load content", zap.Error(err))
		response.Internal(c, "Failed to fetch content")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Update overwrites one named content section (protected).
func (h *ContentHandler) Update(c *gin.Context) {
	var req content.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.content.UpdateSection(c.Request.Context(), &req); err != nil {
		h.logger.Error("failed to update content",
			zap.String("section", req.Section),
			zap.Error(err),
		)
		response.Internal(c, "Failed to update content")
		return
	}

	response.Message(c, "Content updated successfully")
}
