package models

import "time"

type InventoryItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductName  string    `gorm:"not null" json:"productName"`
	Category     string    `json:"category"`
	Stock        int       `gorm:"not null;check:stock >= 0" json:"stock"`
	Status       string    `gorm:"not null" json:"status"`
	ProductPrice float64   `gorm:"not null" json:"productPrice"`
	TotalAmount  float64   `gorm:"not null" json:"totalAmount"`
	ImageURL     string    `json:"imageUrl"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
