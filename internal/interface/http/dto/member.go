package dto

// RegisterRequest 会员注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=100" example:"reader@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"passw0rd1"`
	Name     string `json:"name" binding:"required,min=2,max=50" example:"书虫"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"reader@example.com"`
	Password string `json:"password" binding:"required" example:"passw0rd1"`
}
