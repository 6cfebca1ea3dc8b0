package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

type productBody struct {
	Title            string `json:"title"`
	Price            string `json:"price"`
	DiscountPrice    string `json:"discount_price"`
	Balance          int64  `json:"balance"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	CategorySlug     string `json:"category_slug"`
}

type productResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Price            string `json:"price"`
	DiscountPrice    string `json:"discount_price"`
	Balance          int64  `json:"balance"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	CategoryTitle    string `json:"category_title"`
}

type productsPageResponse struct {
	Products []productResponse `json:"products"`
	Limit    int64             `json:"limit"`
	Offset   int64             `json:"offset"`
}

type statisticResponse struct {
	MinPrice   *string `json:"min_price"`
	MaxPrice   *string `json:"max_price"`
	TotalCount int64   `json:"total_count"`
}

func newProductResponse(info *usecase.ProductDetail) productResponse {
	return productResponse{
		ID:               info.ID,
		Title:            info.Title,
		Price:            formatCents(info.Price),
		DiscountPrice:    formatCents(info.DiscountPrice),
		Balance:          info.Balance,
		Description:      info.Description,
		ShortDescription: info.ShortDescription,
		CategoryTitle:    info.CategoryTitle,
	}
}

func newProductsPageResponse(page *usecase.ProductsPage) productsPageResponse {
	products := make([]productResponse, 0, len(page.Products))
	for i := range page.Products {
		products = append(products, newProductResponse(&page.Products[i]))
	}

	return productsPageResponse{
		Products: products,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
}

func parseProductBody(body *productBody) (*usecase.SaveProductReq, error) {
	price, err := parsePriceToCents(body.Price)
	if err != nil {
		return nil, err
	}

	discountPrice := price
	if body.DiscountPrice != "" {
		discountPrice, err = parsePriceToCents(body.DiscountPrice)
		if err != nil {
			return nil, err
		}
	}

	return &usecase.SaveProductReq{
		Title:            body.Title,
		Price:            price,
		DiscountPrice:    discountPrice,
		Balance:          body.Balance,
		Description:      body.Description,
		ShortDescription: body.ShortDescription,
		CategorySlug:     body.CategorySlug,
	}, nil
}

// listProducts
//
//	@Summary	Страница списка товаров
//	@Tags		products
//	@Produce	json
//	@Param		limit	query		int	false	"Размер страницы"
//	@Param		offset	query		int	false	"Смещение"
//	@Success	200		{object}	productsPageResponse
//	@Router		/products [get]
func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePageParams(r)

	page, err := h.productUsecase.ListProducts(r.Context(), &usecase.PageReq{Limit: limit, Offset: offset})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductsPageResponse(page))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	productResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := h.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// getStatistic
//
//	@Summary	Статистика каталога: минимальная и максимальная цена, суммарный остаток
//	@Tags		products
//	@Produce	json
//	@Success	200	{object}	statisticResponse
//	@Router		/products/info [get]
func (h *ProductHandler) getStatistic(w http.ResponseWriter, r *http.Request) {
	stat, err := h.productUsecase.GetStatistic(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := statisticResponse{TotalCount: stat.TotalCount}
	if stat.MinPrice != nil {
		minPrice := formatCents(*stat.MinPrice)
		res.MinPrice = &minPrice
	}
	if stat.MaxPrice != nil {
		maxPrice := formatCents(*stat.MaxPrice)
		res.MaxPrice = &maxPrice
	}

	WriteSuccess(w, http.StatusOK, res)
}

// createProduct
//
//	@Summary	Создание товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		body	body		productBody	true	"Товар"
//	@Success	201		{object}	productResponse
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/products [post]
func (h *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body productBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	req, err := parseProductBody(&body)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.productUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

// updateProduct
//
//	@Summary	Изменение товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"ID товара"
//	@Param		body	body		productBody	true	"Новые данные"
//	@Success	200		{object}	productResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/products/{id} [put]
func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body productBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	req, err := parseProductBody(&body)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.productUsecase.UpdateProduct(r.Context(), id, req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Param		id	path	int	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/products/{id} [delete]
func (h *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, e.ErrStatusBadRequest
	}

	return id, nil
}
