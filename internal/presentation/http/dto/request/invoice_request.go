package request

// LineItemRequest represents one invoice row as entered. The amount field,
// if sent, is ignored and recomputed server-side.
type LineItemRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Discount float64 `json:"discount" binding:"omitempty"`
	GST      float64 `json:"gst" binding:"omitempty"`
}

// CustomerDetailsRequest represents the customer block of an invoice request
type CustomerDetailsRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	GSTIN    string `json:"gstin"`
	Mobile   string `json:"mobile"`
	Telegram string `json:"telegram"`
}

// PaymentDetailsRequest represents the payment block of an invoice request
type PaymentDetailsRequest struct {
	PaidAmount  float64 `json:"paid_amount"`
	DueDate     string  `json:"due_date"`
	PaymentMode string  `json:"payment_mode"`
}

// InvoiceRequest represents an invoice preview or finalize request
type InvoiceRequest struct {
	InvoiceNo       string                 `json:"invoice_no"`
	Date            string                 `json:"date"`
	CustomerDetails CustomerDetailsRequest `json:"customer_details"`
	Items           []LineItemRequest      `json:"items"`
	PreviousBalance float64                `json:"previous_balance"`
	PaymentDetails  PaymentDetailsRequest  `json:"payment_details"`
}
