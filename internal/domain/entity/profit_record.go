package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfitRecord is the persisted summary of a finalized invoice. Records are
// append-only: re-finalizing the same invoice creates a new row, and rows
// are never updated after creation. Profit is defined as the paid amount at
// the moment of recording.
type ProfitRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceNo  string    `gorm:"size:100;not null" json:"invoice_no"`
	Date       string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Profit     float64   `gorm:"not null" json:"profit"`
	GrandTotal float64   `gorm:"not null" json:"grand_total"`
	PaidAmount float64   `gorm:"not null" json:"paid_amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new record
func (r *ProfitRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProfitRecord model
func (ProfitRecord) TableName() string {
	return "profit_records"
}
