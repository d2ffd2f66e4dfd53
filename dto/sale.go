package dto

type CreateSalesRequest struct {
	Date          string  `json:"date" binding:"required"`
	ProductName   string  `json:"productName" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}

type UpdateSalesRequest struct {
	Date          string   `json:"date"`
	ProductName   string   `json:"productName"`
	Quantity      *int     `json:"quantity"`
	Price         *float64 `json:"price"`
	PaymentMethod string   `json:"paymentMethod"`
}

type SalesResponse struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"paymentMethod"`
}
