package usecase

import (
	"context"
	"encoding/json"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует оформление заказа из корзины.
type OrderUseCase struct {
	orderRepo  OrderRepository
	cartRepo   CartRepository
	outboxRepo OutboxRepository
	dbPool     transaction.Transactional
	logger     logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	cartRepo CartRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:  orderRepo,
		cartRepo:   cartRepo,
		outboxRepo: outboxRepo,
		dbPool:     dbPool,
		logger:     logger,
	}
}

// paymentTaskPayload — тело outbox-события платёжной задачи.
type paymentTaskPayload struct {
	OrderID int64 `json:"order_id"`
}

// PlaceOrder оформляет заказ из корзины пользователя.
// Чтение корзины, проверка остатков, создание заказа, очистка корзины и
// запись outbox-события выполняются в одной транзакции; строки товаров
// блокируются до коммита, чтобы параллельное оформление не продало остаток,
// которого уже нет. Сама корзина и остатки при проверке не изменяются.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, userID int64) (*PlaceOrderRes, error) {
	const op = "OrderUseCase.PlaceOrder"

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	lines, err := o.cartRepo.GetLinesForUpdate(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(lines) == 0 {
		err = e.ErrEmptyCart
		return nil, e.Wrap(op, err)
	}

	totals, shortfalls := domain.Reconcile(lines)
	if len(shortfalls) > 0 {
		insufficientErr := NewInsufficientStockError(shortfalls)
		err = insufficientErr
		return nil, insufficientErr
	}

	order, err := o.orderRepo.Create(ctx, domain.NewOrder(userID, totals.TotalCount, totals.TotalCost))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.cartRepo.Clear(ctx, userID); err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(paymentTaskPayload{OrderID: order.ID})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), PaymentRequested, order.ID, payload))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPlaceOrderRes(order), nil
}

// ListOrders возвращает заказы пользователя.
func (o *OrderUseCase) ListOrders(ctx context.Context, userID int64) ([]OrderInfo, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]OrderInfo, 0, len(orders))
	for _, order := range orders {
		result = append(result, NewOrderInfo(order))
	}

	return result, nil
}
