package http

import (
	"net/http"

	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type cartLineResponse struct {
	ProductID    int64  `json:"product_id"`
	ProductTitle string `json:"product_title"`
	Amount       int64  `json:"amount"`
	Price        string `json:"price"`
}

// addToCart
//
//	@Summary	Добавление товара в корзину
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	400	{object}	ErrorResponse	"Товара нет в наличии"
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/products/{id}/to_cart [post]
func (h *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.AddToCart(r.Context(), userID, productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"added": true,
	})
}

// getCart
//
//	@Summary	Текущая корзина пользователя
//	@Tags		cart
//	@Produce	json
//	@Success	200	{array}	cartLineResponse
//	@Security	BearerAuth
//	@Router		/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	lines, err := h.cartUsecase.GetCart(r.Context(), userID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		res = append(res, cartLineResponse{
			ProductID:    line.ProductID,
			ProductTitle: line.ProductTitle,
			Amount:       line.Amount,
			Price:        formatCents(line.Price),
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
