package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderRepoMock struct {
	order       *domain.Order
	getErr      error
	savedExtID  string
	savedURL    string
	setInfoErr  error
	setInfoCall bool
}

func (m *orderRepoMock) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return order, nil
}

func (m *orderRepoMock) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.order, nil
}

func (m *orderRepoMock) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return nil, nil
}

func (m *orderRepoMock) SetPaymentInfo(ctx context.Context, id int64, externalID, paymentURL string) error {
	m.setInfoCall = true
	m.savedExtID = externalID
	m.savedURL = paymentURL
	return m.setInfoErr
}

type userRepoMock struct {
	user   *domain.User
	getErr error
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.user, m.getErr
}

func (m *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

type gatewayMock struct {
	res    *PaymentRes
	err    error
	called bool
	gotReq *PaymentReq
}

func (m *gatewayMock) CreatePayment(ctx context.Context, req *PaymentReq) (*PaymentRes, error) {
	m.called = true
	m.gotReq = req
	return m.res, m.err
}

type mailMock struct {
	err      error
	called   bool
	gotEmail string
	gotURL   string
}

func (m *mailMock) SendPaymentLink(ctx context.Context, email, paymentURL string) error {
	m.called = true
	m.gotEmail = email
	m.gotURL = paymentURL
	return m.err
}

func userID(v int64) *int64 {
	return &v
}

func TestProcessPayment_Success(t *testing.T) {
	orderRepo := &orderRepoMock{
		order: &domain.Order{ID: 10, UserID: userID(1), Quantity: 5, TotalCost: 3500},
	}
	userRepo := &userRepoMock{user: &domain.User{ID: 1, Email: "buyer@example.com"}}
	gateway := &gatewayMock{res: NewPaymentRes("ext-42", "https://pay.example.com/42")}
	mail := &mailMock{}

	uc := NewPaymentUC(orderRepo, userRepo, gateway, mail, logger.NewSlogLogger())

	err := uc.ProcessPayment(context.Background(), 10)
	require.NoError(t, err)

	require.True(t, gateway.called)
	assert.InDelta(t, 35.0, gateway.gotReq.Amount, 0.001)
	assert.Equal(t, int64(5), gateway.gotReq.ItemsQty)
	assert.Equal(t, "buyer@example.com", gateway.gotReq.UserEmail)

	assert.True(t, orderRepo.setInfoCall)
	assert.Equal(t, "ext-42", orderRepo.savedExtID)
	assert.Equal(t, "https://pay.example.com/42", orderRepo.savedURL)

	assert.True(t, mail.called)
	assert.Equal(t, "buyer@example.com", mail.gotEmail)
	assert.Equal(t, "https://pay.example.com/42", mail.gotURL)
}

func TestProcessPayment_OrderNotFoundIsTerminal(t *testing.T) {
	orderRepo := &orderRepoMock{getErr: e.ErrOrderNotFound}
	gateway := &gatewayMock{}
	mail := &mailMock{}

	uc := NewPaymentUC(orderRepo, &userRepoMock{}, gateway, mail, logger.NewSlogLogger())

	// Задача завершается без ошибки: повтор не исправит отсутствие заказа.
	err := uc.ProcessPayment(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, gateway.called)
	assert.False(t, mail.called)
}

func TestProcessPayment_GatewayFailureLeavesOrderUntouched(t *testing.T) {
	orderRepo := &orderRepoMock{
		order: &domain.Order{ID: 10, UserID: userID(1), Quantity: 1, TotalCost: 100},
	}
	userRepo := &userRepoMock{user: &domain.User{ID: 1, Email: "buyer@example.com"}}
	gateway := &gatewayMock{err: e.ErrPaymentRequestFailed}
	mail := &mailMock{}

	uc := NewPaymentUC(orderRepo, userRepo, gateway, mail, logger.NewSlogLogger())

	err := uc.ProcessPayment(context.Background(), 10)
	require.NoError(t, err)

	assert.False(t, orderRepo.setInfoCall)
	assert.False(t, mail.called)
}

func TestProcessPayment_OrphanOrderSkipped(t *testing.T) {
	orderRepo := &orderRepoMock{
		order: &domain.Order{ID: 10, UserID: nil, Quantity: 1, TotalCost: 100},
	}
	gateway := &gatewayMock{}

	uc := NewPaymentUC(orderRepo, &userRepoMock{}, gateway, &mailMock{}, logger.NewSlogLogger())

	err := uc.ProcessPayment(context.Background(), 10)
	require.NoError(t, err)
	assert.False(t, gateway.called)
}

func TestProcessPayment_MailFailureReturnedAfterSave(t *testing.T) {
	orderRepo := &orderRepoMock{
		order: &domain.Order{ID: 10, UserID: userID(1), Quantity: 1, TotalCost: 100},
	}
	userRepo := &userRepoMock{user: &domain.User{ID: 1, Email: "buyer@example.com"}}
	gateway := &gatewayMock{res: NewPaymentRes("ext-1", "https://pay.example.com/1")}
	mail := &mailMock{err: errors.New("smtp unreachable")}

	uc := NewPaymentUC(orderRepo, userRepo, gateway, mail, logger.NewSlogLogger())

	err := uc.ProcessPayment(context.Background(), 10)
	require.Error(t, err)

	// Ссылка уже сохранена на заказе, теряется только письмо.
	assert.True(t, orderRepo.setInfoCall)
}
