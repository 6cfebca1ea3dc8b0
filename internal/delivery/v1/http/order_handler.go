package http

import (
	"net/http"

	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type orderResponse struct {
	ID         int64   `json:"id"`
	Quantity   int64   `json:"quantity"`
	TotalCost  string  `json:"total_cost"`
	IsPayed    bool    `json:"is_payed"`
	PaymentURL *string `json:"payment_url"`
	CreatedAt  string  `json:"created_at"`
}

// placeOrder
//
//	@Summary		Оформление заказа из корзины
//	@Description	Создаёт заказ из текущей корзины. Ссылка на оплату приходит письмом.
//	@Tags			orders
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]interface{}	"Корзина пуста или остатков не хватает"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.PlaceOrder(r.Context(), userID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"order_id":   order.OrderID,
		"quantity":   order.Quantity,
		"total_cost": formatCents(order.TotalCost),
	})
}

// listOrders
//
//	@Summary	Заказы пользователя
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	orderResponse
//	@Security	BearerAuth
//	@Router		/orders [get]
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	orders, err := h.orderUsecase.ListOrders(r.Context(), userID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, orderResponse{
			ID:         order.ID,
			Quantity:   order.Quantity,
			TotalCost:  formatCents(order.TotalCost),
			IsPayed:    order.IsPayed,
			PaymentURL: order.PaymentURL,
			CreatedAt:  order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
