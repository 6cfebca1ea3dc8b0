package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

type categoryBody struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type subCategoryBody struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	ParentSlug string `json:"parent_slug"`
}

type categoryResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	ParentSlug *string `json:"parent_slug"`
}

func newCategoryResponse(info *usecase.CategoryInfo) categoryResponse {
	return categoryResponse{
		ID:         info.ID,
		Title:      info.Title,
		Slug:       info.Slug,
		ParentSlug: info.ParentSlug,
	}
}

// listCategories
//
//	@Summary	Список всех категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	categoryResponse
//	@Router		/categories [get]
func (h *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.ListCategories(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		res = append(res, newCategoryResponse(&categories[i]))
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getCategory
//
//	@Summary	Категория по slug
//	@Tags		categories
//	@Produce	json
//	@Param		slug	path		string	true	"Slug категории"
//	@Success	200		{object}	categoryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{slug} [get]
func (h *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	category, err := h.categoryUsecase.GetCategory(r.Context(), slug)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(category))
}

// productsByCategory
//
//	@Summary	Товары категории и всех её подкатегорий
//	@Tags		categories
//	@Produce	json
//	@Param		slug	path		string	true	"Slug категории"
//	@Param		limit	query		int		false	"Размер страницы"
//	@Param		offset	query		int		false	"Смещение"
//	@Success	200		{object}	productsPageResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{slug}/products [get]
func (h *CategoryHandler) productsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	limit, offset := parsePageParams(r)

	page, err := h.categoryUsecase.ProductsByCategory(r.Context(), &usecase.ProductsByCategoryReq{
		Slug:   slug,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductsPageResponse(page))
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		body	body		categoryBody	true	"Категория"
//	@Success	201		{object}	categoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/categories [post]
func (h *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.categoryUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{
		Title: body.Title,
		Slug:  body.Slug,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newCategoryResponse(category))
}

// createSubCategory
//
//	@Summary	Создание подкатегории по slug родителя
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		body	body		subCategoryBody	true	"Подкатегория"
//	@Success	201		{object}	categoryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/categories/sub [post]
func (h *CategoryHandler) createSubCategory(w http.ResponseWriter, r *http.Request) {
	var body subCategoryBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.categoryUsecase.CreateSubCategory(r.Context(), &usecase.CreateSubCategoryReq{
		Title:      body.Title,
		Slug:       body.Slug,
		ParentSlug: body.ParentSlug,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newCategoryResponse(category))
}

// updateCategory
//
//	@Summary	Изменение категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		slug	path		string			true	"Slug категории"
//	@Param		body	body		categoryBody	true	"Новые данные"
//	@Success	200		{object}	categoryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/categories/{slug} [put]
func (h *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var body categoryBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(r.Context(), slug, &usecase.CreateCategoryReq{
		Title: body.Title,
		Slug:  body.Slug,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(category))
}

// deleteCategory
//
//	@Summary	Удаление категории
//	@Tags		categories
//	@Param		slug	path	string	true	"Slug категории"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/categories/{slug} [delete]
func (h *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.categoryUsecase.DeleteCategory(r.Context(), slug); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parsePageParams(r *http.Request) (limit, offset int64) {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
