package enum

import "encoding/json"

// PaymentMode represents how the customer paid
type PaymentMode int

const (
	PaymentModeCash   PaymentMode = 0
	PaymentModeOnline PaymentMode = 1
	PaymentModeUPI    PaymentMode = 2
	PaymentModeCheque PaymentMode = 3
)

func (m PaymentMode) String() string {
	names := [...]string{"CASH", "ONLINE", "UPI", "CHEQUE"}
	if int(m) < 0 || int(m) >= len(names) {
		return "CASH"
	}
	return names[m]
}

// ParsePaymentMode maps a wire string to a PaymentMode, defaulting to cash.
func ParsePaymentMode(s string) PaymentMode {
	switch s {
	case "ONLINE":
		return PaymentModeOnline
	case "UPI":
		return PaymentModeUPI
	case "CHEQUE":
		return PaymentModeCheque
	default:
		return PaymentModeCash
	}
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	switch str {
	case "CASH":
		*m = PaymentModeCash
	case "ONLINE":
		*m = PaymentModeOnline
	case "UPI":
		*m = PaymentModeUPI
	case "CHEQUE":
		*m = PaymentModeCheque
	}
	return nil
}
