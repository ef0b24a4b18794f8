package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/parthsh/billify-api/internal/application/service"
	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/internal/domain/enum"
)

func TestComputeLineAmount(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		rate     float64
		discount float64
		want     float64
	}{
		{"no discount", 2, 100, 0, 200},
		{"ten percent off", 2, 100, 10, 180},
		{"full discount", 5, 40, 100, 0},
		{"fractional quantity", 1.5, 10, 0, 15},
		{"zero quantity", 0, 100, 10, 0},
		{"negative quantity passes through", -1, 100, 0, -100},
		{"discount over hundred goes negative", 1, 100, 150, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ComputeLineAmount(tt.quantity, tt.rate, tt.discount)
			if got != tt.want {
				t.Errorf("ComputeLineAmount(%v, %v, %v) = %v, want %v", tt.quantity, tt.rate, tt.discount, got, tt.want)
			}
		})
	}
}

// The formula must be applied exactly as written, with no rounding of the
// intermediate value. 3 * 0.1 is not 0.3 in binary floating point and the
// engine must not hide that.
func TestComputeLineAmount_NoRounding(t *testing.T) {
	got := service.ComputeLineAmount(3, 0.1, 0)
	want := 3 * 0.1
	if got != want {
		t.Errorf("ComputeLineAmount(3, 0.1, 0) = %v, want the exact float64 product %v", got, want)
	}
}

func TestComputeDocumentTotals(t *testing.T) {
	items := []entity.LineItem{
		{Name: "A", Amount: 100, GST: 18},
		{Name: "B", Amount: 50, GST: 0},
	}

	totals := service.ComputeDocumentTotals(items, 20, 30)

	if totals.SubTotal != 150 {
		t.Errorf("SubTotal = %v, want 150", totals.SubTotal)
	}
	if totals.TotalTax != 18 {
		t.Errorf("TotalTax = %v, want 18", totals.TotalTax)
	}
	if totals.GrandTotal != totals.SubTotal+totals.TotalTax {
		t.Errorf("GrandTotal = %v, want SubTotal+TotalTax = %v", totals.GrandTotal, totals.SubTotal+totals.TotalTax)
	}
	if totals.BalanceDue != totals.GrandTotal+20-30 {
		t.Errorf("BalanceDue = %v, want %v", totals.BalanceDue, totals.GrandTotal+20-30)
	}
}

func TestComputeDocumentTotals_Status(t *testing.T) {
	tests := []struct {
		name            string
		items           []entity.LineItem
		previousBalance float64
		paidAmount      float64
		want            enum.InvoiceStatus
	}{
		{"fully paid", []entity.LineItem{{Amount: 50}}, 0, 50, enum.InvoiceStatusPaid},
		{"overpaid", []entity.LineItem{{Amount: 50}}, 0, 80, enum.InvoiceStatusPaid},
		{"nothing paid", []entity.LineItem{{Amount: 50}}, 0, 0, enum.InvoiceStatusDue},
		{"partially paid", []entity.LineItem{{Amount: 50}}, 0, 30, enum.InvoiceStatusPartial},
		{"previous balance keeps it partial", []entity.LineItem{{Amount: 50}}, 100, 50, enum.InvoiceStatusPartial},
		{"empty invoice reads as paid", nil, 0, 0, enum.InvoiceStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := service.ComputeDocumentTotals(tt.items, tt.previousBalance, tt.paidAmount)
			if totals.Status != tt.want {
				t.Errorf("Status = %v, want %v (balanceDue=%v)", totals.Status, tt.want, totals.BalanceDue)
			}
		})
	}
}

func TestFilterNamedItems(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Sugar", Amount: 10},
		{Name: "", Amount: 5},
		{Name: "Rice", Amount: 20},
	}

	named := service.FilterNamedItems(items)
	if len(named) != 2 {
		t.Fatalf("got %d items, want 2", len(named))
	}
	if named[0].Name != "Sugar" || named[1].Name != "Rice" {
		t.Errorf("unexpected items: %+v", named)
	}
}

type stubProfitRepo struct {
	records []entity.ProfitRecord
	err     error
}

func (s *stubProfitRepo) Append(_ context.Context, record *entity.ProfitRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, *record)
	return nil
}

func (s *stubProfitRepo) ListByDateRange(_ context.Context, userID uuid.UUID, startDate, endDate string) ([]entity.ProfitRecord, error) {
	var out []entity.ProfitRecord
	for _, r := range s.records {
		if r.UserID == userID && r.Date >= startDate && r.Date <= endDate {
			out = append(out, r)
		}
	}
	return out, s.err
}

func TestInvoiceService_Preview_CountsBlankRows(t *testing.T) {
	svc := service.NewInvoiceService(&stubProfitRepo{})

	invoice := svc.Preview(&service.InvoiceInput{
		InvoiceNo: "INV-001",
		Items: []entity.LineItem{
			{Name: "Sugar", Quantity: 2, Rate: 50},
			{Name: "", Quantity: 1, Rate: 30}, // blank row with typed numbers
		},
	})

	if len(invoice.Items) != 2 {
		t.Fatalf("preview dropped rows: got %d items, want 2", len(invoice.Items))
	}
	if invoice.SubTotal != 130 {
		t.Errorf("SubTotal = %v, want 130 (blank rows count in live totals)", invoice.SubTotal)
	}
}

func TestInvoiceService_Finalize_DropsBlankRows(t *testing.T) {
	repo := &stubProfitRepo{}
	svc := service.NewInvoiceService(repo)
	userID := uuid.New()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	result := svc.Finalize(context.Background(), userID, &service.InvoiceInput{
		InvoiceNo: "INV-007",
		Items: []entity.LineItem{
			{Name: "Sugar", Quantity: 2, Rate: 50},
			{Name: "", Quantity: 1, Rate: 30},
		},
		PaymentDetails: entity.PaymentDetails{PaidAmount: 100},
	}, now)

	if len(result.Invoice.Items) != 1 {
		t.Fatalf("finalize kept blank rows: got %d items, want 1", len(result.Invoice.Items))
	}
	if result.Invoice.SubTotal != 100 {
		t.Errorf("SubTotal = %v, want 100 (blank rows excluded from export totals)", result.Invoice.SubTotal)
	}
	if result.NextInvoiceNo != "INV-008" {
		t.Errorf("NextInvoiceNo = %q, want INV-008", result.NextInvoiceNo)
	}
	if !result.ProfitSaved {
		t.Error("ProfitSaved = false, want true")
	}

	if len(repo.records) != 1 {
		t.Fatalf("got %d profit records, want 1", len(repo.records))
	}
	record := repo.records[0]
	if record.Date != "2024-06-10" {
		t.Errorf("record date = %q, want 2024-06-10", record.Date)
	}
	if record.Profit != 100 {
		t.Errorf("record profit = %v, want the paid amount 100", record.Profit)
	}
}

// Two finalizes of the same invoice append two independent records; nothing
// deduplicates the log.
func TestInvoiceService_Finalize_Twice(t *testing.T) {
	repo := &stubProfitRepo{}
	svc := service.NewInvoiceService(repo)
	userID := uuid.New()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	input := &service.InvoiceInput{
		InvoiceNo: "INV-001",
		Items:     []entity.LineItem{{Name: "Rice", Quantity: 1, Rate: 200}},
		PaymentDetails: entity.PaymentDetails{
			PaidAmount: 200,
		},
	}

	svc.Finalize(context.Background(), userID, input, now)
	svc.Finalize(context.Background(), userID, input, now)

	if len(repo.records) != 2 {
		t.Fatalf("got %d profit records, want 2", len(repo.records))
	}

	summary := service.Summarize(repo.records, now)
	if summary.TotalProfit != 400 {
		t.Errorf("TotalProfit = %v, want 400 (duplicates summed)", summary.TotalProfit)
	}
}

func TestInvoiceService_Finalize_AppendFailureDoesNotBlockExport(t *testing.T) {
	repo := &stubProfitRepo{err: errors.New("storage down")}
	svc := service.NewInvoiceService(repo)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	result := svc.Finalize(context.Background(), uuid.New(), &service.InvoiceInput{
		InvoiceNo: "INV-001",
		Items:     []entity.LineItem{{Name: "Rice", Quantity: 1, Rate: 200}},
	}, now)

	if result == nil || result.Invoice == nil {
		t.Fatal("finalize returned nil despite storage failure")
	}
	if result.ProfitSaved {
		t.Error("ProfitSaved = true, want false")
	}
	if result.Invoice.GrandTotal != 200 {
		t.Errorf("GrandTotal = %v, want 200", result.Invoice.GrandTotal)
	}
}
