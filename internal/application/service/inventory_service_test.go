package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/parthsh/billify-api/internal/application/service"
	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/pkg/pagination"
	"github.com/parthsh/billify-api/pkg/spreadsheet"
)

type stubInventoryRepo struct {
	items       []entity.InventoryItem
	searchCalls int
}

func (s *stubInventoryRepo) CreateBatch(_ context.Context, items []entity.InventoryItem) error {
	s.items = append(s.items, items...)
	return nil
}

func (s *stubInventoryRepo) List(_ context.Context, _ *pagination.PaginationParams) ([]entity.InventoryItem, int64, error) {
	return s.items, int64(len(s.items)), nil
}

func (s *stubInventoryRepo) Search(_ context.Context, query string) ([]entity.InventoryItem, error) {
	s.searchCalls++
	var out []entity.InventoryItem
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(query)) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubInventoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *stubInventoryRepo) Clear(_ context.Context) error {
	s.items = nil
	return nil
}

func TestNormalizeRows(t *testing.T) {
	rows := []spreadsheet.Row{
		{"Name": "A", "Rate": "10"},
		{"Name": "", "Rate": "5"},
		{"Name": "B", "Rate": "0"},
	}

	items := service.NormalizeRows(rows)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Name != "A" || items[0].Rate != 10 {
		t.Errorf("survivor = %+v, want {A 10}", items[0])
	}
}

func TestNormalizeRows_AlternateHeaderCasing(t *testing.T) {
	rows := []spreadsheet.Row{
		{"name": "sugar", "rate": "45.5", "gst": "5", "STOCK": "12"},
	}

	items := service.NormalizeRows(rows)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0]
	if item.Rate != 45.5 {
		t.Errorf("Rate = %v, want 45.5", item.Rate)
	}
	if item.GST == nil || *item.GST != 5 {
		t.Errorf("GST = %v, want 5", item.GST)
	}
	if item.Stock == nil || *item.Stock != 12 {
		t.Errorf("Stock = %v, want 12", item.Stock)
	}
}

func TestNormalizeRows_NonNumericOptionalFieldsDropped(t *testing.T) {
	rows := []spreadsheet.Row{
		{"Name": "rice", "Rate": "60", "GST": "n/a", "Stock": "plenty"},
	}

	items := service.NormalizeRows(rows)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].GST != nil {
		t.Errorf("GST = %v, want nil for a non-numeric cell", *items[0].GST)
	}
	if items[0].Stock != nil {
		t.Errorf("Stock = %v, want nil for a non-numeric cell", *items[0].Stock)
	}
}

func TestInventoryService_Import_RejectsEmptyResult(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc := service.NewInventoryService(repo)

	rows := []spreadsheet.Row{
		{"Name": "", "Rate": "5"},
		{"Name": "B", "Rate": "0"},
	}

	_, err := svc.Import(context.Background(), rows)
	if err == nil {
		t.Fatal("expected the import to be rejected when no rows survive")
	}
	if len(repo.items) != 0 {
		t.Errorf("rejected import still wrote %d items", len(repo.items))
	}
}

func TestInventoryService_Import_ReportsCounts(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc := service.NewInventoryService(repo)

	rows := []spreadsheet.Row{
		{"Name": "A", "Rate": "10"},
		{"Name": "", "Rate": "5"},
		{"Name": "B", "Rate": "20"},
	}

	result, err := svc.Import(context.Background(), rows)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.TotalRows != 3 || result.Accepted != 2 || result.Dropped != 1 {
		t.Errorf("result = %+v, want {3 2 1}", result)
	}
	if len(repo.items) != 2 {
		t.Errorf("repo has %d items, want 2", len(repo.items))
	}
}

func TestInventoryService_Suggest_LengthGate(t *testing.T) {
	repo := &stubInventoryRepo{items: []entity.InventoryItem{
		{Name: "Sugar"}, {Name: "Brown Sugar"}, {Name: "Salt"},
	}}
	svc := service.NewInventoryService(repo)

	items, err := svc.Suggest(context.Background(), "s")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("one-char query returned %d items, want 0", len(items))
	}
	if repo.searchCalls != 0 {
		t.Errorf("one-char query hit storage %d times, want 0", repo.searchCalls)
	}

	items, err = svc.Suggest(context.Background(), "sug")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("got %d suggestions, want 2 (contains match, case-insensitive)", len(items))
	}
}
