package response

import (
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
)

type LoginResponse struct {
	Token     string                      `json:"token"`
	ExpiresIn int64                       `json:"expiresIn"`
	User      *queries.AuthorizedUserView `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     r.AccessToken,
		ExpiresIn: int64(r.ExpiresIn.Seconds()),
		User:      r.User,
	}
}
