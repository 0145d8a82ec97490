package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "venue-desk/internal/handler/dto/request"
	resdto "venue-desk/internal/handler/dto/response"
	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/usecase/commands"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Operator login
// @Description Exchange operator credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid login or password")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}
