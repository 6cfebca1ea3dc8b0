package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/market-backend/internal/cfg"
	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// AuthUseCase реализует регистрацию и вход пользователей с выдачей JWT.
type AuthUseCase struct {
	userRepo UserRepository
	cfg      *cfg.AuthCfg
	logger   logger.Logger
}

func NewAuthUC(userRepo UserRepository, cfg *cfg.AuthCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register создаёт нового пользователя.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*UserInfo, error) {
	const op = "AuthUseCase.Register"

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, e.Wrap(op, e.ErrEmailRequired)
	}

	if len(req.Password) < minPasswordLen {
		return nil, e.Wrap(op, e.ErrPasswordTooShort)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.Create(ctx, domain.NewUser(email, string(hash)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewUserInfo(user), nil
}

// Login проверяет учётные данные и выдаёт подписанный JWT.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Не раскрываем, существует ли пользователь
		return nil, e.Wrap(op, e.ErrWrongCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrWrongCredentials)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"admin": user.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(a.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &LoginRes{Token: signed}, nil
}
