package dto

import (
	"time"

	"jims/models"
)

type CreateInventoryRequest struct {
	ProductName  string   `json:"productName" binding:"required"`
	Category     string   `json:"category"`
	Stock        *int     `json:"stock" binding:"required"`
	ProductPrice *float64 `json:"productPrice" binding:"required"`
	ImageURL     string   `json:"imageUrl"`
}

type UpdateInventoryRequest struct {
	ProductName  string   `json:"productName"`
	Category     string   `json:"category"`
	Stock        *int     `json:"stock"`
	ProductPrice *float64 `json:"productPrice"`
	ImageURL     string   `json:"imageUrl"`
}

type InventoryResponse struct {
	ID           uint      `json:"id"`
	ProductName  string    `json:"productName"`
	Category     string    `json:"category"`
	Stock        int       `json:"stock"`
	Status       string    `json:"status"`
	ProductPrice float64   `json:"productPrice"`
	TotalAmount  float64   `json:"totalAmount"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ScoredItem pairs an inventory item with its fuzzy match score
type ScoredItem struct {
	Item  models.InventoryItem `json:"item"`
	Score int                  `json:"score"`
}
