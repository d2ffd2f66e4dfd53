package dto

// CreateWalletRequest covers GCash and PayMaya creates; the two
// tables share one shape.
type CreateWalletRequest struct {
	Amount          *float64 `json:"amount" binding:"required"`
	ServiceCharge   float64  `json:"serviceCharge"`
	TransactionType string   `json:"transactionType" binding:"required"`
	ChargeMOP       string   `json:"chargeMOP"`
	ReferenceNumber string   `json:"referenceNumber"`
	Date            string   `json:"date" binding:"required"`
}

type UpdateWalletRequest struct {
	Amount          *float64 `json:"amount"`
	ServiceCharge   *float64 `json:"serviceCharge"`
	TransactionType string   `json:"transactionType"`
	ChargeMOP       string   `json:"chargeMOP"`
	ReferenceNumber string   `json:"referenceNumber"`
	Date            string   `json:"date"`
}

type WalletResponse struct {
	ID              uint    `json:"id"`
	Amount          float64 `json:"amount"`
	ServiceCharge   float64 `json:"serviceCharge"`
	TransactionType string  `json:"transactionType"`
	ChargeMOP       string  `json:"chargeMOP"`
	ReferenceNumber string  `json:"referenceNumber"`
	Date            string  `json:"date"`
}

type CreateJuanPayRequest struct {
	Date       string    `json:"date" binding:"required"`
	Beginnings []float64 `json:"beginnings"`
	Ending     float64   `json:"ending"`
	Sales      float64   `json:"sales"`
}

type UpdateJuanPayRequest struct {
	Date       string    `json:"date"`
	Beginnings []float64 `json:"beginnings"`
	Ending     *float64  `json:"ending"`
	Sales      *float64  `json:"sales"`
}

type JuanPayResponse struct {
	ID         uint      `json:"id"`
	Date       string    `json:"date"`
	Beginnings []float64 `json:"beginnings"`
	Ending     float64   `json:"ending"`
	Sales      float64   `json:"sales"`
}
