package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/internal/domain/repository"
	"github.com/parthsh/billify-api/pkg/apperror"
	"github.com/parthsh/billify-api/pkg/pagination"
	"github.com/parthsh/billify-api/pkg/spreadsheet"
)

// suggestMinChars gates autocomplete: the catalog is only queried once the
// typed prefix exceeds one character.
const suggestMinChars = 2

// InventoryService handles the shop catalog: bulk import, listing and
// autocomplete lookups.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// ImportResult reports what happened to each row of an import file.
type ImportResult struct {
	TotalRows int `json:"total_rows"`
	Accepted  int `json:"accepted"`
	Dropped   int `json:"dropped"`
}

// NormalizeRows maps loosely-typed spreadsheet rows onto the strict catalog
// shape. A row survives only with a non-empty trimmed name and a rate
// strictly greater than zero; GST and Stock are attached only when the cell
// is present and numeric. Everything else is silently dropped — import
// errors are reported in aggregate, not per row.
func NormalizeRows(rows []spreadsheet.Row) []entity.InventoryItem {
	items := make([]entity.InventoryItem, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Lookup("Name", "name"))
		rate, rateOK := parseCell(row.Lookup("Rate", "rate"))
		if name == "" || !rateOK || rate <= 0 {
			continue
		}

		item := entity.InventoryItem{Name: name, Rate: rate}
		if gst, ok := parseCell(row.Lookup("GST", "gst")); ok {
			item.GST = &gst
		}
		if stock, ok := parseCell(row.Lookup("Stock", "stock", "STOCK")); ok {
			item.Stock = &stock
		}
		items = append(items, item)
	}
	return items
}

func parseCell(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Import normalizes the parsed rows and appends the survivors to the
// catalog. If nothing survives the import is rejected as a whole.
func (s *InventoryService) Import(ctx context.Context, rows []spreadsheet.Row) (*ImportResult, error) {
	items := NormalizeRows(rows)
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("No valid items found. Please check that Name and Rate columns exist and have values.")
	}

	if err := s.inventoryRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return &ImportResult{
		TotalRows: len(rows),
		Accepted:  len(items),
		Dropped:   len(rows) - len(items),
	}, nil
}

// List returns the catalog ordered by name.
func (s *InventoryService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// Suggest returns catalog items whose name contains the query,
// case-insensitive. Queries below the length gate return an empty list
// without touching storage.
func (s *InventoryService) Suggest(ctx context.Context, query string) ([]entity.InventoryItem, error) {
	if len(query) < suggestMinChars {
		return []entity.InventoryItem{}, nil
	}
	return s.inventoryRepo.Search(ctx, query)
}

// Clear removes the entire catalog.
func (s *InventoryService) Clear(ctx context.Context) error {
	return s.inventoryRepo.Clear(ctx)
}
