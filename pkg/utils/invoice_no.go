package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NextInvoiceNo advances the numeric suffix of an invoice number, keeping
// at least three digits of zero padding: "INV-007" -> "INV-008",
// "INV-099" -> "INV-100". Numbers without a parseable "PREFIX-N" shape are
// returned unchanged.
func NextInvoiceNo(invoiceNo string) string {
	idx := strings.LastIndex(invoiceNo, "-")
	if idx < 0 || idx == len(invoiceNo)-1 {
		return invoiceNo
	}
	n, err := strconv.Atoi(invoiceNo[idx+1:])
	if err != nil {
		return invoiceNo
	}
	return fmt.Sprintf("%s-%03d", invoiceNo[:idx], n+1)
}
