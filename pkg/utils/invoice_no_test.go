package utils_test

import (
	"testing"

	"github.com/parthsh/billify-api/pkg/utils"
)

func TestNextInvoiceNo(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INV-007", "INV-008"},
		{"INV-099", "INV-100"},
		{"INV-999", "INV-1000"},
		{"BILL-2024-12", "BILL-2024-013"},
		{"INV-", "INV-"},
		{"INV007", "INV007"},
		{"INV-abc", "INV-abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := utils.NextInvoiceNo(tt.in); got != tt.want {
			t.Errorf("NextInvoiceNo(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
