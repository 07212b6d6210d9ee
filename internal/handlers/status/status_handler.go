package status

import (
	"net/http"

	"nexcraft-service/internal/domain/status"
	"nexcraft-service/internal/pkg/response"
	"nexcraft-service/internal/service/submission"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatusHandler struct {
	submissions *submission.Service
	logger      *zap.Logger
}

func NewStatusHandler(svc *submission.Service, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{submissions: svc, logger: logger}
}

func (h *StatusHandler) Create(c *gin.Context) {
	var req status.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	check, err := h.submissions.CreateStatusCheck(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create status check", zap.Error(err))
		response.Internal(c, "Failed to create status check")
		return
	}

	c.JSON(http.StatusOK, check)
}

func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.submissions.ListStatusChecks(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list status checks", zap.Error(err))
		response.Internal(c, "Failed to fetch status checks")
		return
	}

	c.JSON(http.StatusOK, checks)
}
