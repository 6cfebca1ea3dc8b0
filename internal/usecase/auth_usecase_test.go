package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/market-backend/internal/cfg"
	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authUserRepoMock struct {
	created *domain.User
	byEmail map[string]*domain.User
}

func (m *authUserRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.created = user
	created := *user
	created.ID = 1
	return &created, nil
}

func (m *authUserRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}
	return nil, e.ErrUserNotFound
}

func (m *authUserRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, e.ErrUserNotFound
}

func testAuthCfg() *cfg.AuthCfg {
	return &cfg.AuthCfg{JWTSecret: "test-secret", TokenTTL: time.Hour}
}

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	repo := &authUserRepoMock{}
	uc := NewAuthUC(repo, testAuthCfg(), logger.NewSlogLogger())

	info, err := uc.Register(context.Background(), &RegisterReq{
		Email:    "  Buyer@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "buyer@example.com", info.Email)
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "correct horse", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("correct horse")))
}

func TestRegister_Validation(t *testing.T) {
	uc := NewAuthUC(&authUserRepoMock{}, testAuthCfg(), logger.NewSlogLogger())

	_, err := uc.Register(context.Background(), &RegisterReq{Email: "not-an-email", Password: "longenough"})
	require.ErrorIs(t, err, e.ErrEmailRequired)

	_, err = uc.Register(context.Background(), &RegisterReq{Email: "a@b.com", Password: "short"})
	require.ErrorIs(t, err, e.ErrPasswordTooShort)
}

func TestLogin_IssuesSignedToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &authUserRepoMock{
		byEmail: map[string]*domain.User{
			"buyer@example.com": {ID: 7, Email: "buyer@example.com", PasswordHash: string(hash), IsAdmin: true},
		},
	}
	uc := NewAuthUC(repo, testAuthCfg(), logger.NewSlogLogger())

	res, err := uc.Login(context.Background(), &LoginReq{Email: "Buyer@example.com", Password: "correct horse"})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["sub"])
	assert.Equal(t, "buyer@example.com", claims["email"])
	assert.Equal(t, true, claims["admin"])
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &authUserRepoMock{
		byEmail: map[string]*domain.User{
			"buyer@example.com": {ID: 7, Email: "buyer@example.com", PasswordHash: string(hash)},
		},
	}
	uc := NewAuthUC(repo, testAuthCfg(), logger.NewSlogLogger())

	_, err = uc.Login(context.Background(), &LoginReq{Email: "buyer@example.com", Password: "wrong"})
	require.ErrorIs(t, err, e.ErrWrongCredentials)
}

func TestLogin_UnknownUserHidesExistence(t *testing.T) {
	uc := NewAuthUC(&authUserRepoMock{}, testAuthCfg(), logger.NewSlogLogger())

	_, err := uc.Login(context.Background(), &LoginReq{Email: "nobody@example.com", Password: "whatever"})
	require.ErrorIs(t, err, e.ErrWrongCredentials)
	assert.NotErrorIs(t, err, e.ErrUserNotFound)
}
