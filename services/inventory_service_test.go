package services_test

import (
	"testing"

	"jims/models"
	"jims/services"
)

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		want  string
	}{
		{"zero stock is out", 0, "Out Of Stock"},
		{"one unit is low", 1, "Low Stock"},
		{"at threshold is low", 10, "Low Stock"},
		{"above threshold is in stock", 11, "In Stock"},
		{"large stock is in stock", 500, "In Stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.StockStatus(tt.stock); got != tt.want {
				t.Errorf("StockStatus(%d) = %q, want %q", tt.stock, got, tt.want)
			}
		})
	}
}

func TestStockTotal(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		price float64
		want  float64
	}{
		{"zero stock", 0, 99.5, 0},
		{"unit price", 3, 1, 3},
		{"fractional price", 4, 2.5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.StockTotal(tt.stock, tt.price); got != tt.want {
				t.Errorf("StockTotal(%d, %v) = %v, want %v", tt.stock, tt.price, got, tt.want)
			}
		})
	}
}

func TestApplyDerivedFields(t *testing.T) {
	item := models.InventoryItem{
		ProductName:  "Rice 25kg",
		Stock:        5,
		ProductPrice: 1200,
		// client-sent values that must be overwritten
		Status:      "In Stock",
		TotalAmount: 1,
	}

	services.ApplyDerivedFields(&item)

	if item.Status != "Low Stock" {
		t.Errorf("Status = %q, want %q", item.Status, "Low Stock")
	}
	if item.TotalAmount != 6000 {
		t.Errorf("TotalAmount = %v, want %v", item.TotalAmount, 6000.0)
	}
}

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Coca-Cola  ", "coca-cola"},
		{"Café", "cafe"},
		{"ALL CAPS", "all caps"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := services.NormalizeInput(tt.in); got != tt.want {
			t.Errorf("NormalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "sugar", "sugar", 1.0},
		{"both empty", "", "", 1.0},
		{"disjoint", "ab", "xy", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.CalculateSimilarity(tt.a, tt.b); got != tt.want {
				t.Errorf("CalculateSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if got := services.CalculateSimilarity("sugar", "sugars"); got <= 0.7 {
		t.Errorf("CalculateSimilarity(sugar, sugars) = %v, want > 0.7", got)
	}
}

func TestSearchInventory(t *testing.T) {
	items := []models.InventoryItem{
		{ID: 1, ProductName: "Brown Sugar 1kg", Category: "Groceries"},
		{ID: 2, ProductName: "White Sugar 1kg", Category: "Groceries"},
		{ID: 3, ProductName: "Dish Soap"},
	}

	scored := services.SearchInventory("sugar", items)

	if len(scored) != 2 {
		t.Fatalf("got %d results, want 2", len(scored))
	}
	for _, s := range scored {
		if s.Item.ID == 3 {
			t.Errorf("unrelated item %d should not match", s.Item.ID)
		}
		if s.Score <= 0 {
			t.Errorf("item %d has non-positive score %d", s.Item.ID, s.Score)
		}
	}
	if scored[0].Score < scored[1].Score {
		t.Errorf("results not ordered by score: %d before %d", scored[0].Score, scored[1].Score)
	}
}

func TestSearchInventoryEmptyList(t *testing.T) {
	if got := services.SearchInventory("anything", nil); len(got) != 0 {
		t.Errorf("got %d results from empty list, want 0", len(got))
	}
}
