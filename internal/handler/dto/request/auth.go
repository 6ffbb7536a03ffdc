package request

import (
	"staybook/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

// RegisterRequest only allows the self-registrable roles; admins are seeded.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=host guest"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{Email: r.Email, Password: r.Password, Role: r.Role}
}
