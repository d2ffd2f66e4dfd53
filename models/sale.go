package models

import "time"

type SalesRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Date          time.Time `gorm:"type:date;not null" json:"date"`
	ProductName   string    `gorm:"not null" json:"productName"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Price         float64   `gorm:"not null" json:"price"`
	Total         float64   `gorm:"not null" json:"total"`
	PaymentMethod string    `gorm:"not null" json:"paymentMethod"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
