package models

import (
	"time"

	"gorm.io/gorm"
)

// GCashRecord soft-deletes: DELETE sets deleted_at and list queries
// skip deleted rows.
type GCashRecord struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Amount          float64        `gorm:"not null" json:"amount"`
	ServiceCharge   float64        `gorm:"default:0" json:"serviceCharge"`
	TransactionType string         `gorm:"not null" json:"transactionType"`
	ChargeMOP       string         `gorm:"column:charge_mop" json:"chargeMOP"`
	ReferenceNumber string         `json:"referenceNumber"`
	Date            time.Time      `gorm:"type:date;not null" json:"date"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
