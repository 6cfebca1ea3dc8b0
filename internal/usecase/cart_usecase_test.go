package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartRepoMock struct {
	lines      []domain.CartLine
	addedUser  int64
	addedItem  int64
	addCalled  bool
	clearCalls int
}

func (m *cartRepoMock) AddOne(ctx context.Context, userID, productID int64) error {
	m.addCalled = true
	m.addedUser = userID
	m.addedItem = productID
	return nil
}

func (m *cartRepoMock) GetLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	return m.lines, nil
}

func (m *cartRepoMock) GetLinesForUpdate(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	return m.lines, nil
}

func (m *cartRepoMock) Clear(ctx context.Context, userID int64) error {
	m.clearCalls++
	return nil
}

func TestAddToCart_InStockProduct(t *testing.T) {
	cartRepo := &cartRepoMock{}
	productRepo := &productRepoMock{
		byID: map[int64]*domain.Product{
			5: {ID: 5, Title: "pen", Balance: 3},
		},
	}

	uc := NewCartUC(cartRepo, productRepo, logger.NewSlogLogger())

	err := uc.AddToCart(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, cartRepo.addCalled)
	assert.Equal(t, int64(1), cartRepo.addedUser)
	assert.Equal(t, int64(5), cartRepo.addedItem)
}

func TestAddToCart_OutOfStock(t *testing.T) {
	cartRepo := &cartRepoMock{}
	productRepo := &productRepoMock{
		byID: map[int64]*domain.Product{
			5: {ID: 5, Title: "pen", Balance: 0},
		},
	}

	uc := NewCartUC(cartRepo, productRepo, logger.NewSlogLogger())

	err := uc.AddToCart(context.Background(), 1, 5)
	require.ErrorIs(t, err, e.ErrOutOfStock)
	assert.False(t, cartRepo.addCalled)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	uc := NewCartUC(&cartRepoMock{}, &productRepoMock{}, logger.NewSlogLogger())

	err := uc.AddToCart(context.Background(), 1, 99)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestGetCart_MapsLines(t *testing.T) {
	cartRepo := &cartRepoMock{
		lines: []domain.CartLine{
			{ProductID: 5, ProductTitle: "pen", Amount: 2, Price: 700, Balance: 3},
		},
	}

	uc := NewCartUC(cartRepo, &productRepoMock{}, logger.NewSlogLogger())

	lines, err := uc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, CartLineInfo{ProductID: 5, ProductTitle: "pen", Amount: 2, Price: 700}, lines[0])
}
