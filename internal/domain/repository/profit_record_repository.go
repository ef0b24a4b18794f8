package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/parthsh/billify-api/internal/domain/entity"
)

// ProfitRecordRepository defines the interface for profit record storage.
// Records are append-only; there is no update or delete.
type ProfitRecordRepository interface {
	// Append persists a new record. Each finalize action appends one record;
	// repeated finalizes of the same invoice append independent records.
	Append(ctx context.Context, record *entity.ProfitRecord) error

	// ListByDateRange returns a user's records whose date (YYYY-MM-DD,
	// inclusive bounds) falls within [startDate, endDate], ordered by date
	// descending.
	ListByDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]entity.ProfitRecord, error)
}
