package response

import (
	"time"

	"venue-desk/internal/usecase/commands"
)

type LoginResponse struct {
	Login       string    `json:"login"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{Login: r.Login, AccessToken: r.AccessToken, ExpiresAt: r.ExpiresAt}
}
