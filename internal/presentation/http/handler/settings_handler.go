package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/parthsh/billify-api/internal/application/service"
	"github.com/parthsh/billify-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles shop settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the shop settings, creating defaults on first access
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the shop settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		ShopName           string `json:"shop_name" binding:"required"`
		OwnerName          string `json:"owner_name"`
		Address            string `json:"address"`
		GSTIN              string `json:"gstin"`
		Mobile             string `json:"mobile"`
		Email              string `json:"email"`
		BankDetails        string `json:"bank_details"`
		TermsAndConditions string `json:"terms_and_conditions"`
		CustomFooterMsg    string `json:"custom_footer_msg"`
		AllowItemDiscount  bool   `json:"allow_item_discount"`
		ShowGST            bool   `json:"show_gst"`
		PrimaryUseCase     string `json:"primary_use_case"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		UserID:             *userID,
		ShopName:           req.ShopName,
		OwnerName:          req.OwnerName,
		Address:            req.Address,
		GSTIN:              req.GSTIN,
		Mobile:             req.Mobile,
		Email:              req.Email,
		BankDetails:        req.BankDetails,
		TermsAndConditions: req.TermsAndConditions,
		CustomFooterMsg:    req.CustomFooterMsg,
		AllowItemDiscount:  req.AllowItemDiscount,
		ShowGST:            req.ShowGST,
		PrimaryUseCase:     req.PrimaryUseCase,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
