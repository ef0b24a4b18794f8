package repository

import (
	"context"

	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/pkg/pagination"
)

// InventoryRepository defines the interface for catalog data operations.
type InventoryRepository interface {
	// CreateBatch inserts items in chunks. Used by bulk import.
	CreateBatch(ctx context.Context, items []entity.InventoryItem) error

	// List returns items ordered by name ascending.
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.InventoryItem, int64, error)

	// Search returns items whose name contains the query, case-insensitive,
	// ordered by name ascending.
	Search(ctx context.Context, query string) ([]entity.InventoryItem, error)

	// Count returns the number of items in the catalog.
	Count(ctx context.Context) (int64, error)

	// Clear removes every item from the catalog.
	Clear(ctx context.Context) error
}
