package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/parthsh/billify-api/internal/application/service"
	"github.com/parthsh/billify-api/internal/presentation/http/dto/response"
	"github.com/parthsh/billify-api/pkg/pagination"
	"github.com/parthsh/billify-api/pkg/spreadsheet"
)

// InventoryHandler handles inventory catalog HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
	maxUploadSize    int64
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService, maxUploadSize int64) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		maxUploadSize:    maxUploadSize,
	}
}

// List returns the catalog. With a ?q= parameter it switches to
// autocomplete lookup and returns matching items without pagination.
func (h *InventoryHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if query := c.Query("q"); query != "" {
		items, err := h.inventoryService.Suggest(c.Request.Context(), query)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Suggestions retrieved successfully", items)
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.inventoryService.List(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory retrieved successfully", result)
}

// Import accepts a CSV or Excel upload and bulk-loads the catalog
func (h *InventoryHandler) Import(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded. Use multipart field 'file'")
		return
	}

	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		response.BadRequest(c, fmt.Sprintf("File too large (max %d bytes)", h.maxUploadSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	rows, err := spreadsheet.Parse(fileHeader.Filename, file)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.inventoryService.Import(c.Request.Context(), rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory imported successfully", result)
}

// Clear removes the entire catalog
func (h *InventoryHandler) Clear(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.inventoryService.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
