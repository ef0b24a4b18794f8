package service

import (
	"fmt"

	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShopName: "PRINTER TEST",
			Address:  "Test Address",
			Mobile:   "+91 00000 00000",
		},
		InvoiceNo: "TEST-001",
		Date:      "Test Date",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, Rate: 10.00, Amount: 10.00},
			{Name: "Test Item 2", Quantity: 2, Rate: 5.00, Amount: 10.00},
		},
		SubTotal:   20.00,
		TotalTax:   0.00,
		GrandTotal: 20.00,
		Paid:       20.00,
		BalanceDue: 0.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// BuildReceipt composes a printable receipt from a finalized invoice
// snapshot and the shop settings. Settings enter the rendering layer only
// here; the totals engine never sees them.
func BuildReceipt(invoice *entity.Invoice, settings *entity.ShopSettings) *entity.Receipt {
	receipt := &entity.Receipt{
		InvoiceNo:       invoice.InvoiceNo,
		Date:            invoice.Date,
		Customer:        invoice.CustomerDetails.Name,
		PaymentMode:     invoice.PaymentDetails.PaymentMode.String(),
		SubTotal:        invoice.SubTotal,
		TotalTax:        invoice.TotalTax,
		GrandTotal:      invoice.GrandTotal,
		PreviousBalance: invoice.PreviousBalance,
		Paid:            invoice.PaymentDetails.PaidAmount,
		BalanceDue:      invoice.BalanceDue,
	}

	if settings != nil {
		receipt.Header = entity.ReceiptHeader{
			ShopName: settings.ShopName,
			Address:  settings.Address,
			Mobile:   settings.Mobile,
			GSTIN:    settings.GSTIN,
		}
		receipt.FooterMsg = settings.CustomFooterMsg
	}

	for _, item := range invoice.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Amount:   item.Amount,
		})
	}

	return receipt
}

// PrintReceipt formats and sends a receipt to the configured printer.
func (s *PrinterService) PrintReceipt(receipt *entity.Receipt) error {
	if err := s.printer.Print(FormatReceipt(receipt)); err != nil {
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Mobile != "" {
		doc.Text(r.Header.Mobile)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentMode != "" {
		doc.KeyValue("Payment:", r.PaymentMode)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Amount))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.Rate)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.TotalTax > 0 {
		doc.KeyValue("GST:", fmt.Sprintf("%.2f", r.TotalTax))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.GrandTotal)).
		SetBold(false)

	if r.PreviousBalance != 0 {
		doc.KeyValue("Prev Balance:", fmt.Sprintf("%.2f", r.PreviousBalance))
	}
	if r.Paid > 0 {
		doc.KeyValue("Paid:", fmt.Sprintf("%.2f", r.Paid))
	}
	if r.BalanceDue > 0 {
		doc.KeyValue("Balance Due:", fmt.Sprintf("%.2f", r.BalanceDue))
	}

	doc.Separator('-')

	// Footer
	footer := r.FooterMsg
	if footer == "" {
		footer = "Thank you for your business!"
	}
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text(footer).
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
