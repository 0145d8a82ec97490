package request

import "venue-desk/internal/usecase/commands"

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Login: r.Login, Password: r.Password}
}
