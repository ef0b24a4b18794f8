package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parthsh/billify-api/internal/domain/entity"
	domainRepo "github.com/parthsh/billify-api/internal/domain/repository"
)

type profitRecordRepository struct {
	db *gorm.DB
}

// NewProfitRecordRepository creates a new profit record repository
func NewProfitRecordRepository(db *gorm.DB) domainRepo.ProfitRecordRepository {
	return &profitRecordRepository{db: db}
}

func (r *profitRecordRepository) Append(ctx context.Context, record *entity.ProfitRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *profitRecordRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]entity.ProfitRecord, error) {
	var records []entity.ProfitRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date DESC").
		Find(&records).Error
	return records, err
}
