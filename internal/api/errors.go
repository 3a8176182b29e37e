package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/render"
	"go.uber.org/zap"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

// respondDomainError maps service errors to HTTP responses.
func (h *Handlers) respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, insight.ErrUnknownInsight):
		respondError(c, http.StatusNotFound, "unknown_insight", err.Error())
	case errors.Is(err, render.ErrNotChartable):
		respondError(c, http.StatusUnprocessableEntity, "not_chartable", err.Error())
	default:
		h.logger.Error("request failed", zapRequestID(c), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
