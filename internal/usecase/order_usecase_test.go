package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txMock struct {
	pgx.Tx
	commits   int
	rollbacks int
}

func (t *txMock) Commit(ctx context.Context) error {
	t.commits++
	return nil
}

func (t *txMock) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type txPoolMock struct {
	tx *txMock
}

func (p *txPoolMock) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return p.tx, nil
}

type placeOrderRepoMock struct {
	created *domain.Order
}

func (m *placeOrderRepoMock) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	m.created = order
	created := *order
	created.ID = 77
	return &created, nil
}

func (m *placeOrderRepoMock) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return nil, e.ErrOrderNotFound
}

func (m *placeOrderRepoMock) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return nil, nil
}

func (m *placeOrderRepoMock) SetPaymentInfo(ctx context.Context, id int64, externalID, paymentURL string) error {
	return nil
}

type outboxRepoMock struct {
	created *OutboxEvent
}

func (m *outboxRepoMock) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.created = event
	return event, nil
}

func (m *outboxRepoMock) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *outboxRepoMock) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

func TestPlaceOrder_Success(t *testing.T) {
	cartRepo := &cartRepoMock{
		lines: []domain.CartLine{
			{ProductID: 5, ProductTitle: "pen", Amount: 2, Price: 500, Balance: 3},
			{ProductID: 6, ProductTitle: "notebook", Amount: 3, Price: 2500, Balance: 10},
		},
	}
	orderRepo := &placeOrderRepoMock{}
	outboxRepo := &outboxRepoMock{}
	tx := &txMock{}

	uc := NewOrderUC(orderRepo, cartRepo, outboxRepo, &txPoolMock{tx: tx}, logger.NewSlogLogger())

	res, err := uc.PlaceOrder(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(77), res.OrderID)
	assert.Equal(t, int64(5), res.Quantity)
	assert.Equal(t, int64(8500), res.TotalCost)

	require.NotNil(t, orderRepo.created)
	assert.Equal(t, int64(5), orderRepo.created.Quantity)
	assert.Equal(t, int64(8500), orderRepo.created.TotalCost)

	assert.Equal(t, 1, cartRepo.clearCalls)

	require.NotNil(t, outboxRepo.created)
	assert.Equal(t, PaymentRequested, outboxRepo.created.EventType)
	assert.Equal(t, int64(77), outboxRepo.created.OrderID)
	var payload paymentTaskPayload
	require.NoError(t, json.Unmarshal(outboxRepo.created.Payload, &payload))
	assert.Equal(t, int64(77), payload.OrderID)

	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestPlaceOrder_InsufficientStockRejectsWholeCheckout(t *testing.T) {
	cartRepo := &cartRepoMock{
		lines: []domain.CartLine{
			{ProductID: 5, ProductTitle: "pen", Amount: 2, Price: 500, Balance: 3},
			{ProductID: 6, ProductTitle: "notebook", Amount: 5, Price: 2500, Balance: 1},
		},
	}
	orderRepo := &placeOrderRepoMock{}
	outboxRepo := &outboxRepoMock{}
	tx := &txMock{}

	uc := NewOrderUC(orderRepo, cartRepo, outboxRepo, &txPoolMock{tx: tx}, logger.NewSlogLogger())

	_, err := uc.PlaceOrder(context.Background(), 1)

	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, map[string]int64{"notebook": 1}, stockErr.Shortfalls)

	// Заказ не создан, корзина не тронута, событие не записано.
	assert.Nil(t, orderRepo.created)
	assert.Equal(t, 0, cartRepo.clearCalls)
	assert.Nil(t, outboxRepo.created)

	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	orderRepo := &placeOrderRepoMock{}
	tx := &txMock{}

	uc := NewOrderUC(orderRepo, &cartRepoMock{}, &outboxRepoMock{}, &txPoolMock{tx: tx}, logger.NewSlogLogger())

	_, err := uc.PlaceOrder(context.Background(), 1)
	require.ErrorIs(t, err, e.ErrEmptyCart)

	assert.Nil(t, orderRepo.created)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}
