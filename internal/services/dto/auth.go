package dto

import "epicevents/internal/models"

type SignInRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh" validate:"required"`
}

type SignUpRequest struct {
	Username string          `json:"username" validate:"required,max=100"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required,crm-role"`
}

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type UserResponse struct {
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	IsAdmin  bool            `json:"is_admin"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		IsAdmin:  u.IsAdmin,
	}
}
