package validator_test

import (
	"testing"

	"jims/models"
	"jims/validator"
)

func TestValidateEmployee(t *testing.T) {
	tests := []struct {
		name     string
		employee models.Employee
		wantErr  bool
	}{
		{"valid", models.Employee{Name: "Ana", Password: "secret123", Contact: "09171234567", Status: "Active", Salary: 15000}, false},
		{"valid without optional fields", models.Employee{Name: "Ana", Password: "secret123"}, false},
		{"missing name", models.Employee{Password: "secret123"}, true},
		{"missing password", models.Employee{Name: "Ana"}, true},
		{"short password", models.Employee{Name: "Ana", Password: "abc"}, true},
		{"bad contact", models.Employee{Name: "Ana", Password: "secret123", Contact: "12345"}, true},
		{"contact with country code", models.Employee{Name: "Ana", Password: "secret123", Contact: "+639171234567"}, false},
		{"bad status", models.Employee{Name: "Ana", Password: "secret123", Status: "Retired"}, true},
		{"negative salary", models.Employee{Name: "Ana", Password: "secret123", Salary: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateEmployee(&tt.employee)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmployee() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	valid := []string{"Cash", "Gcash", "PayMaya", "Juanpay"}
	for _, m := range valid {
		if !validator.IsValidPaymentMethod(m) {
			t.Errorf("IsValidPaymentMethod(%q) = false, want true", m)
		}
	}

	invalid := []string{"", "cash", "GCash", "Credit Card"}
	for _, m := range invalid {
		if validator.IsValidPaymentMethod(m) {
			t.Errorf("IsValidPaymentMethod(%q) = true, want false", m)
		}
	}
}

func TestIsValidTransactionType(t *testing.T) {
	if !validator.IsValidTransactionType("Cash-In") || !validator.IsValidTransactionType("Cash-Out") {
		t.Error("known transaction types rejected")
	}
	for _, tx := range []string{"", "CashIn", "cash-in", "Transfer"} {
		if validator.IsValidTransactionType(tx) {
			t.Errorf("IsValidTransactionType(%q) = true, want false", tx)
		}
	}
}

func TestValidateInventoryItem(t *testing.T) {
	tests := []struct {
		name    string
		item    models.InventoryItem
		wantErr bool
	}{
		{"valid", models.InventoryItem{ProductName: "Rice", Stock: 10, ProductPrice: 50}, false},
		{"zero stock is fine", models.InventoryItem{ProductName: "Rice", Stock: 0, ProductPrice: 50}, false},
		{"missing name", models.InventoryItem{Stock: 10, ProductPrice: 50}, true},
		{"negative stock", models.InventoryItem{ProductName: "Rice", Stock: -1, ProductPrice: 50}, true},
		{"negative price", models.InventoryItem{ProductName: "Rice", Stock: 10, ProductPrice: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateInventoryItem(&tt.item)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInventoryItem() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSalesRecord(t *testing.T) {
	tests := []struct {
		name    string
		sale    models.SalesRecord
		wantErr bool
	}{
		{"valid", models.SalesRecord{ProductName: "Rice", Quantity: 2, Price: 50, PaymentMethod: "Cash"}, false},
		{"missing product", models.SalesRecord{Quantity: 2, Price: 50, PaymentMethod: "Cash"}, true},
		{"zero quantity", models.SalesRecord{ProductName: "Rice", Quantity: 0, Price: 50, PaymentMethod: "Cash"}, true},
		{"negative price", models.SalesRecord{ProductName: "Rice", Quantity: 2, Price: -1, PaymentMethod: "Cash"}, true},
		{"bad payment method", models.SalesRecord{ProductName: "Rice", Quantity: 2, Price: 50, PaymentMethod: "Barter"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateSalesRecord(&tt.sale)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSalesRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWalletAmounts(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		charge  float64
		txType  string
		wantErr bool
	}{
		{"valid cash in", 500, 10, "Cash-In", false},
		{"valid cash out", 500, 0, "Cash-Out", false},
		{"negative amount", -1, 10, "Cash-In", true},
		{"negative charge", 500, -1, "Cash-In", true},
		{"bad type", 500, 10, "Deposit", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateWalletAmounts(tt.amount, tt.charge, tt.txType)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWalletAmounts() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePayrollRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  models.PayrollRecord
		wantErr bool
	}{
		{"valid", models.PayrollRecord{EmpID: "EMP001", Month: 6, Year: 2025, BasicSalary: 15000, Deductions: 500, Status: "Pending"}, false},
		{"missing empId", models.PayrollRecord{Month: 6, Year: 2025, BasicSalary: 15000}, true},
		{"month zero", models.PayrollRecord{EmpID: "EMP001", Month: 0, Year: 2025, BasicSalary: 15000}, true},
		{"month thirteen", models.PayrollRecord{EmpID: "EMP001", Month: 13, Year: 2025, BasicSalary: 15000}, true},
		{"ancient year", models.PayrollRecord{EmpID: "EMP001", Month: 6, Year: 1999, BasicSalary: 15000}, true},
		{"negative basic", models.PayrollRecord{EmpID: "EMP001", Month: 6, Year: 2025, BasicSalary: -1}, true},
		{"negative deductions", models.PayrollRecord{EmpID: "EMP001", Month: 6, Year: 2025, BasicSalary: 15000, Deductions: -1}, true},
		{"bad status", models.PayrollRecord{EmpID: "EMP001", Month: 6, Year: 2025, BasicSalary: 15000, Status: "Waiting"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePayrollRecord(&tt.record)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePayrollRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
