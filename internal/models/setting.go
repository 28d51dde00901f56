package models

import "time"

// Setting keys
const (
	SettingRevealPurchasePrice = "reveal_purchase_price"
	SettingUnlockPasscodeHash  = "unlock_passcode_hash"
	SettingCurrentSaleID       = "current_sale_id" // transient bill handoff slot
)

type Setting struct {
	Key       string `gorm:"primaryKey;size:50" json:"key"`
	Value     string `gorm:"size:255" json:"value"`
	UpdatedAt time.Time
}
