package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/DRSN-tech/market-backend/internal/cfg"
	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Gateway — клиент внешнего платёжного сервиса.
// API-токен передаётся в теле запроса, так требует протокол сервиса.
type Gateway struct {
	client *http.Client
	cfg    *cfg.PaymentCfg
	logger logger.Logger
}

func NewGateway(cfg *cfg.PaymentCfg, logger logger.Logger) *Gateway {
	return &Gateway{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		logger: logger,
	}
}

type createPaymentBody struct {
	Amount    float64 `json:"amount"`
	ItemsQty  int64   `json:"items_qty"`
	APIToken  string  `json:"api_token"`
	UserEmail string  `json:"user_email"`
}

type createPaymentResult struct {
	OrderID *string `json:"orderId"`
	URL     *string `json:"url"`
}

// CreatePayment регистрирует платёж во внешнем сервисе и возвращает
// внешний номер заказа и ссылку на оплату.
func (g *Gateway) CreatePayment(ctx context.Context, req *usecase.PaymentReq) (*usecase.PaymentRes, error) {
	body, err := json.Marshal(createPaymentBody{
		Amount:    req.Amount,
		ItemsQty:  req.ItemsQty,
		APIToken:  g.cfg.Token,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Warnf("payment service returned status %d", resp.StatusCode)
		return nil, e.ErrPaymentRequestFailed
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var result createPaymentResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrPaymentBadResponse)
	}

	if result.OrderID == nil || result.URL == nil {
		return nil, e.ErrPaymentBadResponse
	}

	return usecase.NewPaymentRes(*result.OrderID, *result.URL), nil
}
