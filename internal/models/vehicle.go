package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle - one three-wheeler in inventory
type Vehicle struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	Position      int             `gorm:"index;not null" json:"-"` // insertion order, maintained by the store
	ModelName     string          `gorm:"size:100;not null" json:"model_name"`
	Year          int             `gorm:"not null" json:"year"`
	Registration  string          `gorm:"size:50;not null" json:"registration"` // not unique across records
	Color         string          `gorm:"size:50;not null" json:"color"`
	ChassisNo     string          `gorm:"size:100;not null" json:"chassis_no"`
	EngineNo      string          `gorm:"size:100;not null" json:"engine_no"`
	Notes         string          `gorm:"size:1000" json:"notes"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"purchase_price"`
	AddedDate     string          `gorm:"size:10;not null" json:"added_date"` // "2006-01-02", set once at creation
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
