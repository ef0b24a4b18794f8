package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem is one entry in the shop-wide catalog used for autocomplete
// and pre-fill during invoice entry. The catalog is global to the shop, not
// per invoice. GST and Stock are optional import columns; nil means the
// source file did not carry a usable value.
type InventoryItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null;index" json:"name"`
	Rate      float64        `gorm:"not null" json:"rate"`
	GST       *float64       `json:"gst,omitempty"`
	Stock     *float64       `json:"stock,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}
