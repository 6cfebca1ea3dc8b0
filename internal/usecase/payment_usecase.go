package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// PaymentUseCase реализует платёжную задачу: запрос ссылки на оплату во
// внешнем сервисе и отправку письма пользователю. Выполняется воркером
// очереди после оформления заказа, с семантикой at-least-once.
type PaymentUseCase struct {
	orderRepo OrderRepository
	userRepo  UserRepository
	gateway   PaymentGateway
	mail      MailSender
	logger    logger.Logger
}

func NewPaymentUC(
	orderRepo OrderRepository,
	userRepo UserRepository,
	gateway PaymentGateway,
	mail MailSender,
	logger logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		gateway:   gateway,
		mail:      mail,
		logger:    logger,
	}
}

// ProcessPayment запрашивает ссылку на оплату для заказа и отправляет её пользователю.
// Отсутствие заказа или отказ платёжного сервиса логируются, задача завершается
// без повтора: заказ остаётся в состоянии «ожидает ссылку на оплату».
// Ошибка отправки письма возвращается наружу — к этому моменту ссылка уже
// сохранена на заказе.
func (p *PaymentUseCase) ProcessPayment(ctx context.Context, orderID int64) error {
	const op = "PaymentUseCase.ProcessPayment"

	order, err := p.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, e.ErrOrderNotFound) {
			p.logger.Errorf(err, "Order with id %d not found", orderID)
			return nil
		}
		return e.Wrap(op, err)
	}

	if order.UserID == nil {
		p.logger.Errorf(e.ErrUserNotFound, "Order %d has no owner, skipping payment", orderID)
		return nil
	}

	user, err := p.userRepo.GetByID(ctx, *order.UserID)
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			p.logger.Errorf(err, "Owner of order %d not found, skipping payment", orderID)
			return nil
		}
		return e.Wrap(op, err)
	}

	amount := decimal.NewFromInt(order.TotalCost).Div(decimal.NewFromInt(100)).InexactFloat64()

	res, err := p.gateway.CreatePayment(ctx, NewPaymentReq(amount, order.Quantity, user.Email))
	if err != nil {
		p.logger.Errorf(err, "Request to payment service failed for order %d", orderID)
		return nil
	}

	if err := p.orderRepo.SetPaymentInfo(ctx, orderID, res.OrderID, res.URL); err != nil {
		return e.Wrap(op, err)
	}

	if err := p.mail.SendPaymentLink(ctx, user.Email, res.URL); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
