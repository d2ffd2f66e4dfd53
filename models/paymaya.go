package models

import "time"

// PayMayaRecord has no delete route and no deleted_at column. The
// asymmetry with GCash is existing business behavior, kept as is.
type PayMayaRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Amount          float64   `gorm:"not null" json:"amount"`
	ServiceCharge   float64   `gorm:"default:0" json:"serviceCharge"`
	TransactionType string    `gorm:"not null" json:"transactionType"`
	ChargeMOP       string    `gorm:"column:charge_mop" json:"chargeMOP"`
	ReferenceNumber string    `json:"referenceNumber"`
	Date            time.Time `gorm:"type:date;not null" json:"date"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
