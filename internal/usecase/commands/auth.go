package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/pkg/jwt"
	"venue-desk/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

// OperatorAccount is the single desk account.
type OperatorAccount struct {
	Login        string
	PasswordHash string
}

type LoginRequest struct {
	Login    string
	Password string
}

type LoginResult struct {
	Login       string
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	account    OperatorAccount
	jwtService *jwt.Service
	now        func() time.Time
}

func NewAuthCommands(account OperatorAccount, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		account:    account,
		jwtService: jwtService,
		now:        time.Now,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	loginOK := subtle.ConstantTimeCompare([]byte(req.Login), []byte(a.account.Login)) == 1
	// bcrypt runs for unknown logins too.
	passErr := password.ComparePassword(a.account.PasswordHash, req.Password)
	if !loginOK || passErr != nil {
		slog.WarnContext(ctx, "operator login rejected", "login", req.Login)
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.account.Login)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Login:       a.account.Login,
		AccessToken: token,
		ExpiresAt:   a.now().Add(a.jwtService.TokenDuration()),
	}, nil
}
