package dto

type EmployeeStatsResponse struct {
	TotalEmployees  int `json:"totalEmployees"`
	ActiveEmployees int `json:"activeEmployees"`
	Departments     int `json:"departments"`
	NewHires        int `json:"newHires"`
}

type MonthRevenue struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
}

type SalesStatsResponse struct {
	TotalRevenue        float64        `json:"totalRevenue"`
	CurrentMonthRevenue float64        `json:"currentMonthRevenue"`
	LastMonthRevenue    float64        `json:"lastMonthRevenue"`
	CurrentWeekRevenue  float64        `json:"currentWeekRevenue"`
	MonthlyRevenue      []MonthRevenue `json:"monthlyRevenue"`
}

type PayrollStatusTotal struct {
	Status string  `json:"status"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}

type PayrollStatsResponse struct {
	TotalPaid    float64              `json:"totalPaid"`
	TotalPending float64              `json:"totalPending"`
	TotalOverdue float64              `json:"totalOverdue"`
	ByStatus     []PayrollStatusTotal `json:"byStatus"`
}
