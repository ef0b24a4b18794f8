package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/parthsh/billify-api/internal/domain/entity"
	domainRepo "github.com/parthsh/billify-api/internal/domain/repository"
	"github.com/parthsh/billify-api/pkg/pagination"
)

// importChunkSize caps rows per insert batch. Kept at the original
// system's batched-write limit so very large imports stay in bounded
// round trips.
const importChunkSize = 500

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateBatch(ctx context.Context, items []entity.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(items, importChunkSize).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.InventoryItem, int64, error) {
	var items []entity.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Order("name ASC").
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&items).Error
	return items, total, err
}

func (r *inventoryRepository) Search(ctx context.Context, query string) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).Count(&total).Error
	return total, err
}

func (r *inventoryRepository) Clear(ctx context.Context) error {
	// Batched unscoped delete so a huge catalog clears without one giant
	// statement, mirroring the chunked writes on the import side.
	for {
		result := r.db.WithContext(ctx).
			Where("id IN (?)", r.db.Model(&entity.InventoryItem{}).
				Select("id").Limit(importChunkSize)).
			Unscoped().
			Delete(&entity.InventoryItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
	}
}
