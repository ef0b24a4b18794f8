package entity

// ReceiptHeader holds the shop header printed at the top of a receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	GSTIN    string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// Receipt is a value object representing a printable thermal receipt.
// It is composed from the finalized invoice snapshot at print time and is
// never stored.
type Receipt struct {
	Header          ReceiptHeader `json:"header"`
	InvoiceNo       string        `json:"invoice_no"`
	Date            string        `json:"date"`
	Customer        string        `json:"customer,omitempty"`
	PaymentMode     string        `json:"payment_mode,omitempty"`
	Items           []ReceiptItem `json:"items"`
	SubTotal        float64       `json:"sub_total"`
	TotalTax        float64       `json:"total_tax"`
	GrandTotal      float64       `json:"grand_total"`
	PreviousBalance float64       `json:"previous_balance"`
	Paid            float64       `json:"paid"`
	BalanceDue      float64       `json:"balance_due"`
	FooterMsg       string        `json:"footer_message,omitempty"`
}
