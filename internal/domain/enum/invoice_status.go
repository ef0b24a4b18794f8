package enum

import "encoding/json"

// InvoiceStatus represents the payment status derived for an invoice
type InvoiceStatus int

const (
	InvoiceStatusDue     InvoiceStatus = 0
	InvoiceStatusPartial InvoiceStatus = 1
	InvoiceStatusPaid    InvoiceStatus = 2
)

func (s InvoiceStatus) String() string {
	names := [...]string{"DUE", "PARTIAL", "PAID"}
	if int(s) < 0 || int(s) >= len(names) {
		return "DUE"
	}
	return names[s]
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "DUE":
		*s = InvoiceStatusDue
	case "PARTIAL":
		*s = InvoiceStatusPartial
	case "PAID":
		*s = InvoiceStatusPaid
	}
	return nil
}
