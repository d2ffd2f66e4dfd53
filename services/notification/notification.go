package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

// Service delivers out-of-band notifications to connected dashboards
type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcasts over the shared websocket hub
type MelodyService struct {
	melody *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{melody: m}
}

func (s *MelodyService) SendMessage(message string) error {
	return s.melody.Broadcast([]byte(message))
}

// StockAlertBuilder assembles a stock alert message
type StockAlertBuilder struct {
	productName string
	stock       int
	status      string
}

func NewStockAlertBuilder(productName string, stock int, status string) *StockAlertBuilder {
	return &StockAlertBuilder{
		productName: productName,
		stock:       stock,
		status:      status,
	}
}

func (b *StockAlertBuilder) Build() string {
	return fmt.Sprintf("Stock alert: %s is %s (%d left)", b.productName, b.status, b.stock)
}
