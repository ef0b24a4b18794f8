package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/parthsh/billify-api/internal/domain/entity"
)

// SettingsRepository defines the interface for shop settings storage.
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.ShopSettings, error)
	Create(ctx context.Context, settings *entity.ShopSettings) error
	Update(ctx context.Context, settings *entity.ShopSettings) error
}
