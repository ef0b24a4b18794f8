package entity

import (
	"github.com/parthsh/billify-api/internal/domain/enum"
)

// LineItem is a single row on an invoice. Amount is derived from the other
// numeric fields and recomputed by the totals engine; it is never entered
// directly.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Discount float64 `json:"discount"` // percent, 0-100
	GST      float64 `json:"gst"`      // percent, 0-100
	Amount   float64 `json:"amount"`
}

// CustomerDetails identifies the customer on an invoice.
type CustomerDetails struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	GSTIN    string `json:"gstin,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Telegram string `json:"telegram,omitempty"`
}

// PaymentDetails carries the payment fields entered alongside the items.
type PaymentDetails struct {
	PaidAmount  float64          `json:"paid_amount"`
	DueDate     string           `json:"due_date,omitempty"` // YYYY-MM-DD
	PaymentMode enum.PaymentMode `json:"payment_mode"`
}

// Invoice is the in-memory invoice document. It exists only while editing
// and at export time; it is never persisted. On finalize a snapshot of it
// is taken and a ProfitRecord summarizing it is appended to storage.
type Invoice struct {
	InvoiceNo       string             `json:"invoice_no"`
	Date            string             `json:"date"` // YYYY-MM-DD
	CustomerDetails CustomerDetails    `json:"customer_details"`
	Items           []LineItem         `json:"items"`
	PreviousBalance float64            `json:"previous_balance"`
	PaymentDetails  PaymentDetails     `json:"payment_details"`
	RoundOff        float64            `json:"round_off"`
	SubTotal        float64            `json:"sub_total"`
	TotalTax        float64            `json:"total_tax"`
	GrandTotal      float64            `json:"grand_total"`
	BalanceDue      float64            `json:"balance_due"`
	Status          enum.InvoiceStatus `json:"status"`
}
