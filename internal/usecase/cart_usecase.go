package usecase

import (
	"context"

	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
)

// CartUseCase реализует бизнес-логику корзины.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddToCart добавляет товар в корзину пользователя.
// Повторное добавление того же товара инкрементирует количество,
// уникальность пары (пользователь, товар) гарантирует хранилище.
func (c *CartUseCase) AddToCart(ctx context.Context, userID, productID int64) error {
	const op = "CartUseCase.AddToCart"

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if product.Balance < 1 {
		return e.Wrap(op, e.ErrOutOfStock)
	}

	if err := c.cartRepo.AddOne(ctx, userID, productID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// GetCart возвращает текущие позиции корзины пользователя.
func (c *CartUseCase) GetCart(ctx context.Context, userID int64) ([]CartLineInfo, error) {
	const op = "CartUseCase.GetCart"

	lines, err := c.cartRepo.GetLines(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]CartLineInfo, 0, len(lines))
	for _, line := range lines {
		result = append(result, NewCartLineInfo(line))
	}

	return result, nil
}
