package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/internal/domain/enum"
	"github.com/parthsh/billify-api/internal/domain/repository"
	"github.com/parthsh/billify-api/pkg/utils"
)

// DocumentTotals is the derived state recomputed from the raw entry fields.
type DocumentTotals struct {
	SubTotal   float64            `json:"sub_total"`
	TotalTax   float64            `json:"total_tax"`
	GrandTotal float64            `json:"grand_total"`
	BalanceDue float64            `json:"balance_due"`
	Status     enum.InvoiceStatus `json:"status"`
}

// ComputeLineAmount returns quantity * rate less the percentage discount.
// Pure arithmetic over whatever it is given: no validation, no rounding.
// Negative inputs produce negative amounts.
func ComputeLineAmount(quantity, rate, discountPercent float64) float64 {
	base := quantity * rate
	return base - base*(discountPercent/100)
}

// ComputeDocumentTotals derives the document-level totals and status from
// the given line items and payment fields. GST is summed per line from the
// already-discounted amount and is not baked into SubTotal.
func ComputeDocumentTotals(items []entity.LineItem, previousBalance, paidAmount float64) DocumentTotals {
	var subTotal, totalTax float64
	for _, item := range items {
		subTotal += item.Amount
		totalTax += item.Amount * item.GST / 100
	}

	grandTotal := subTotal + totalTax
	balanceDue := grandTotal + previousBalance - paidAmount

	status := enum.InvoiceStatusDue
	if balanceDue <= 0 {
		status = enum.InvoiceStatusPaid
	} else if paidAmount > 0 {
		status = enum.InvoiceStatusPartial
	}

	return DocumentTotals{
		SubTotal:   subTotal,
		TotalTax:   totalTax,
		GrandTotal: grandTotal,
		BalanceDue: balanceDue,
		Status:     status,
	}
}

// RecomputeLineAmounts rewrites each item's Amount from its own fields.
// Called before any totals pass so stale client-sent amounts never leak in.
func RecomputeLineAmounts(items []entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	for i, item := range items {
		item.Amount = ComputeLineAmount(item.Quantity, item.Rate, item.Discount)
		out[i] = item
	}
	return out
}

// FilterNamedItems returns only the items with a non-blank name. Export
// totals and the exported item list use this; live totals do not.
func FilterNamedItems(items []entity.LineItem) []entity.LineItem {
	named := make([]entity.LineItem, 0, len(items))
	for _, item := range items {
		if item.Name != "" {
			named = append(named, item)
		}
	}
	return named
}

// InvoiceService handles invoice preview and finalization.
type InvoiceService struct {
	profitRepo repository.ProfitRecordRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(profitRepo repository.ProfitRecordRepository) *InvoiceService {
	return &InvoiceService{profitRepo: profitRepo}
}

// InvoiceInput carries the raw entry fields of an invoice being edited.
type InvoiceInput struct {
	InvoiceNo       string
	Date            string
	CustomerDetails entity.CustomerDetails
	Items           []entity.LineItem
	PreviousBalance float64
	PaymentDetails  entity.PaymentDetails
}

// Preview computes live totals over the full, unfiltered item array. This is
// what the editing screen shows on every keystroke, so blank rows still
// count (their amounts are zero unless the user typed numbers into them).
func (s *InvoiceService) Preview(input *InvoiceInput) *entity.Invoice {
	items := RecomputeLineAmounts(input.Items)
	totals := ComputeDocumentTotals(items, input.PreviousBalance, input.PaymentDetails.PaidAmount)
	return s.assemble(input, items, totals)
}

// FinalizeResult is the outcome of finalizing an invoice for export.
type FinalizeResult struct {
	Invoice       *entity.Invoice `json:"invoice"`
	NextInvoiceNo string          `json:"next_invoice_no"`
	ProfitSaved   bool            `json:"profit_saved"`
}

// Finalize takes the export snapshot: blank-name rows are dropped from the
// item list and from the exported totals, and a ProfitRecord summarizing
// the invoice is appended. The append is best-effort — a storage failure is
// logged and the export still succeeds.
func (s *InvoiceService) Finalize(ctx context.Context, userID uuid.UUID, input *InvoiceInput, now time.Time) *FinalizeResult {
	items := FilterNamedItems(RecomputeLineAmounts(input.Items))
	totals := ComputeDocumentTotals(items, input.PreviousBalance, input.PaymentDetails.PaidAmount)
	invoice := s.assemble(input, items, totals)

	record := &entity.ProfitRecord{
		UserID:     userID,
		InvoiceNo:  invoice.InvoiceNo,
		Date:       now.Format("2006-01-02"),
		Profit:     input.PaymentDetails.PaidAmount,
		GrandTotal: totals.GrandTotal,
		PaidAmount: input.PaymentDetails.PaidAmount,
	}

	saved := true
	if err := s.profitRepo.Append(ctx, record); err != nil {
		saved = false
		log.Error().Err(err).
			Str("invoice_no", invoice.InvoiceNo).
			Msg("failed to append profit record, export continues")
	}

	return &FinalizeResult{
		Invoice:       invoice,
		NextInvoiceNo: utils.NextInvoiceNo(invoice.InvoiceNo),
		ProfitSaved:   saved,
	}
}

func (s *InvoiceService) assemble(input *InvoiceInput, items []entity.LineItem, totals DocumentTotals) *entity.Invoice {
	return &entity.Invoice{
		InvoiceNo:       input.InvoiceNo,
		Date:            input.Date,
		CustomerDetails: input.CustomerDetails,
		Items:           items,
		PreviousBalance: input.PreviousBalance,
		PaymentDetails:  input.PaymentDetails,
		RoundOff:        0,
		SubTotal:        totals.SubTotal,
		TotalTax:        totals.TotalTax,
		GrandTotal:      totals.GrandTotal,
		BalanceDue:      totals.BalanceDue,
		Status:          totals.Status,
	}
}
