package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopSettings holds the shop profile and rendering preferences consumed by
// the export/receipt layer. The totals and analytics engines never read it.
type ShopSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Shop identity
	ShopName  string `gorm:"size:255;default:'My Shop'" json:"shop_name"`
	OwnerName string `gorm:"size:255" json:"owner_name"`
	Address   string `gorm:"type:text" json:"address"`
	GSTIN     string `gorm:"size:50" json:"gstin"`
	Mobile    string `gorm:"size:20" json:"mobile"`
	Email     string `gorm:"size:255" json:"email,omitempty"`

	// Document content
	BankDetails        string `gorm:"type:text" json:"bank_details,omitempty"`
	TermsAndConditions string `gorm:"type:text" json:"terms_and_conditions"`
	CustomFooterMsg    string `gorm:"size:255" json:"custom_footer_message"`

	// Rendering preferences
	AllowItemDiscount bool   `gorm:"default:true" json:"allow_item_discount"`
	ShowGST           bool   `gorm:"default:true" json:"show_gst"`
	PrimaryUseCase    string `gorm:"size:20;default:'GENERAL'" json:"invoice_primary_use_case"` // GENERAL or THERMAL_PRINTER
}

// BeforeCreate generates a UUID before creating new settings
func (s *ShopSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ShopSettings model
func (ShopSettings) TableName() string {
	return "shop_settings"
}
