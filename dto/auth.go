package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  EmployeeResponse `json:"user"`
}
