package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/parthsh/billify-api/internal/application/service"
	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/internal/domain/enum"
	"github.com/parthsh/billify-api/internal/presentation/http/dto/request"
	"github.com/parthsh/billify-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice preview and finalize HTTP requests
type InvoiceHandler struct {
	invoiceService  *service.InvoiceService
	settingsService *service.SettingsService
	printerService  *service.PrinterService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, settingsService *service.SettingsService, printerService *service.PrinterService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		settingsService: settingsService,
		printerService:  printerService,
	}
}

// Preview computes live totals for an invoice being edited. All rows count,
// blank names included.
func (h *InvoiceHandler) Preview(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice := h.invoiceService.Preview(toInvoiceInput(&req))
	response.OK(c, "Invoice preview computed", invoice)
}

// Finalize takes the export snapshot of an invoice and appends a profit
// record. With ?print=true the receipt is also sent to the configured
// printer; print failures are reported as a warning, not an error.
func (h *InvoiceHandler) Finalize(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result := h.invoiceService.Finalize(c.Request.Context(), *userID, toInvoiceInput(&req), time.Now())

	data := gin.H{
		"invoice":         result.Invoice,
		"next_invoice_no": result.NextInvoiceNo,
		"profit_saved":    result.ProfitSaved,
	}

	if c.Query("print") == "true" {
		settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
		if err != nil {
			log.Error().Err(err).Msg("failed to load settings for receipt, printing without header")
		}
		receipt := service.BuildReceipt(result.Invoice, settings)
		if err := h.printerService.PrintReceipt(receipt); err != nil {
			data["print_warning"] = err.Error()
		} else {
			data["printed"] = true
		}
	}

	response.OK(c, "Invoice finalized successfully", data)
}

func toInvoiceInput(req *request.InvoiceRequest) *service.InvoiceInput {
	items := make([]entity.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Discount: item.Discount,
			GST:      item.GST,
		}
	}

	return &service.InvoiceInput{
		InvoiceNo: req.InvoiceNo,
		Date:      req.Date,
		CustomerDetails: entity.CustomerDetails{
			Name:     req.CustomerDetails.Name,
			Address:  req.CustomerDetails.Address,
			GSTIN:    req.CustomerDetails.GSTIN,
			Mobile:   req.CustomerDetails.Mobile,
			Telegram: req.CustomerDetails.Telegram,
		},
		Items:           items,
		PreviousBalance: req.PreviousBalance,
		PaymentDetails: entity.PaymentDetails{
			PaidAmount:  req.PaymentDetails.PaidAmount,
			DueDate:     req.PaymentDetails.DueDate,
			PaymentMode: enum.ParsePaymentMode(req.PaymentDetails.PaymentMode),
		},
	}
}
