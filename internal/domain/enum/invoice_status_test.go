package enum_test

import (
	"encoding/json"
	"testing"

	"github.com/parthsh/billify-api/internal/domain/enum"
)

func TestInvoiceStatus_JSON(t *testing.T) {
	data, err := json.Marshal(enum.InvoiceStatusPartial)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"PARTIAL"` {
		t.Errorf("marshal = %s, want \"PARTIAL\"", data)
	}

	var status enum.InvoiceStatus
	if err := json.Unmarshal([]byte(`"PAID"`), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if status != enum.InvoiceStatusPaid {
		t.Errorf("unmarshal gave %v, want InvoiceStatusPaid", status)
	}
}
