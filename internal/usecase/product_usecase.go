package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
)

// ProductUseCase реализует бизнес-логику управления товарами каталога.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// ListProducts возвращает страницу списка товаров.
func (p *ProductUseCase) ListProducts(ctx context.Context, req *PageReq) (*ProductsPage, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := p.productRepo.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	titles, err := p.categoryTitles(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	page := &ProductsPage{
		Products: make([]ProductDetail, 0, len(products)),
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	for i := range products {
		page.Products = append(page.Products, *NewProductDetail(&products[i], categoryTitleOf(&products[i], titles)))
	}

	return page, nil
}

// GetProduct возвращает детальную информацию о товаре, используя кэш.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*ProductDetail, error) {
	const op = "ProductUseCase.GetProduct"

	// Поиск товара в кэше
	cached, err := p.cacheRepo.GetProducts(ctx, []int64{id})
	if err == nil {
		if detail, ok := cached[id]; ok {
			return &detail, nil
		}
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categoryTitle := ""
	if product.CategoryID != nil {
		titles, err := p.categoryTitles(ctx)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		categoryTitle = titles[*product.CategoryID]
	}

	detail := NewProductDetail(product, categoryTitle)

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProducts(bgCtx, []ProductDetail{*detail}); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return detail, nil
}

// CreateProduct создаёт новый товар; категория задаётся slug'ом и может отсутствовать.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) (*ProductDetail, error) {
	const op = "ProductUseCase.CreateProduct"

	product, categoryTitle, err := p.buildProduct(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductDetail(created, categoryTitle), nil
}

// UpdateProduct изменяет товар и сбрасывает его кэш.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) (*ProductDetail, error) {
	const op = "ProductUseCase.UpdateProduct"

	product, categoryTitle, err := p.buildProduct(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := p.productRepo.Update(ctx, id, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to delete product from cache: %v", e.Wrap(op, err))
	}

	return NewProductDetail(updated, categoryTitle), nil
}

// DeleteProduct удаляет товар и сбрасывает его кэш.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to delete product from cache: %v", e.Wrap(op, err))
	}

	return nil
}

// GetStatistic возвращает минимальную, максимальную цену и суммарный остаток всех товаров.
func (p *ProductUseCase) GetStatistic(ctx context.Context) (*StatisticRes, error) {
	const op = "ProductUseCase.GetStatistic"

	stat, err := p.productRepo.GetStatistic(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return stat, nil
}

// buildProduct валидирует запрос и собирает доменную модель товара.
func (p *ProductUseCase) buildProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, string, error) {
	if err := validateProduct(req); err != nil {
		return nil, "", err
	}

	var (
		categoryID    *int64
		categoryTitle string
	)
	if req.CategorySlug != "" {
		category, err := p.categoryRepo.GetBySlug(ctx, req.CategorySlug)
		if err != nil {
			return nil, "", err
		}
		categoryID = &category.ID
		categoryTitle = category.Title
	}

	product := domain.NewProduct(
		req.Title,
		req.Price,
		req.DiscountPrice,
		req.Balance,
		req.Description,
		req.ShortDescription,
		categoryID,
	)

	return product, categoryTitle, nil
}

// categoryTitles возвращает отображение «id категории → название».
func (p *ProductUseCase) categoryTitles(ctx context.Context) (map[int64]string, error) {
	categories, err := p.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	titles := make(map[int64]string, len(categories))
	for _, cat := range categories {
		titles[cat.ID] = cat.Title
	}

	return titles, nil
}

// validateProduct проверяет корректность входных данных товара.
func validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Title) == "" {
		return e.ErrTitleRequired
	}

	if req.Price <= 0 || req.DiscountPrice <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.Balance < 0 {
		return e.ErrInvalidBalance
	}

	return nil
}
