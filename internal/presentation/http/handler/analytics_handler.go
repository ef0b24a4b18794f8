package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parthsh/billify-api/internal/application/service"
	"github.com/parthsh/billify-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles profit analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary returns the profit dashboard for the current month
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), *userID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics summary retrieved successfully", summary)
}
