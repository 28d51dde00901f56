package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod - fixed set of accepted payment labels
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheque       PaymentMethod = "cheque"
	PaymentLeasing      PaymentMethod = "leasing"
)

// Sale - the one allowed transaction against a Vehicle.
// VehicleID carries a unique index: the database backstops the
// one-sale-per-vehicle invariant the lifecycle manager enforces.
type Sale struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	Position     int             `gorm:"index;not null" json:"-"`
	VehicleID    string          `gorm:"size:36;uniqueIndex;not null" json:"vehicle_id"`
	SaleDate     string          `gorm:"size:10;index;not null" json:"sale_date"` // "2006-01-02"
	SellingPrice decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"selling_price"`
	Method       PaymentMethod   `gorm:"size:20;not null" json:"payment_method"`
	BuyerName    string          `gorm:"size:100;not null" json:"buyer_name"`
	BuyerAddress string          `gorm:"size:500;not null" json:"buyer_address"`
	BuyerNIC     string          `gorm:"size:50;not null" json:"buyer_nic"`
	BuyerPhone   string          `gorm:"size:50;not null" json:"buyer_phone"`
	Notes        string          `gorm:"size:1000" json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
}
