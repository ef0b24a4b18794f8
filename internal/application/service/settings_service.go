package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/parthsh/billify-api/internal/domain/entity"
	"github.com/parthsh/billify-api/internal/domain/repository"
)

// SettingsService handles shop settings business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves shop settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.ShopSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create default settings
	if settings == nil {
		settings = &entity.ShopSettings{
			UserID:            userID,
			ShopName:          "My Shop",
			AllowItemDiscount: true,
			ShowGST:           true,
			PrimaryUseCase:    "GENERAL",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating shop settings
type UpdateSettingsInput struct {
	UserID             uuid.UUID
	ShopName           string
	OwnerName          string
	Address            string
	GSTIN              string
	Mobile             string
	Email              string
	BankDetails        string
	TermsAndConditions string
	CustomFooterMsg    string
	AllowItemDiscount  bool
	ShowGST            bool
	PrimaryUseCase     string
}

// UpdateSettings updates shop settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.ShopSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create new
	if settings == nil {
		settings = &entity.ShopSettings{
			UserID: input.UserID,
		}
	}

	// Update fields
	settings.ShopName = input.ShopName
	settings.OwnerName = input.OwnerName
	settings.Address = input.Address
	settings.GSTIN = input.GSTIN
	settings.Mobile = input.Mobile
	settings.Email = input.Email
	settings.BankDetails = input.BankDetails
	settings.TermsAndConditions = input.TermsAndConditions
	settings.CustomFooterMsg = input.CustomFooterMsg
	settings.AllowItemDiscount = input.AllowItemDiscount
	settings.ShowGST = input.ShowGST
	settings.PrimaryUseCase = input.PrimaryUseCase

	if settings.ID == uuid.Nil {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
