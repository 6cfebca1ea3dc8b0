package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
)

// CategoryUseCase реализует бизнес-логику управления категориями каталога.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	logger       logger.Logger
}

func NewCategoryUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	logger logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// ListCategories возвращает все категории каталога.
func (c *CategoryUseCase) ListCategories(ctx context.Context) ([]CategoryInfo, error) {
	const op = "CategoryUseCase.ListCategories"

	categories, err := c.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	bySlug := make(map[int64]string, len(categories))
	for _, cat := range categories {
		bySlug[cat.ID] = cat.Slug
	}

	result := make([]CategoryInfo, 0, len(categories))
	for i := range categories {
		result = append(result, *NewCategoryInfo(&categories[i], parentSlugOf(&categories[i], bySlug)))
	}

	return result, nil
}

// GetCategory возвращает категорию по slug.
func (c *CategoryUseCase) GetCategory(ctx context.Context, slug string) (*CategoryInfo, error) {
	const op = "CategoryUseCase.GetCategory"

	category, err := c.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryInfo(category, nil), nil
}

// CreateCategory создаёт корневую категорию.
func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*CategoryInfo, error) {
	const op = "CategoryUseCase.CreateCategory"

	if err := validateCategory(req.Title, req.Slug); err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.Title, req.Slug, nil))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryInfo(category, nil), nil
}

// CreateSubCategory создаёт подкатегорию, родитель задаётся slug'ом.
func (c *CategoryUseCase) CreateSubCategory(ctx context.Context, req *CreateSubCategoryReq) (*CategoryInfo, error) {
	const op = "CategoryUseCase.CreateSubCategory"

	if err := validateCategory(req.Title, req.Slug); err != nil {
		return nil, e.Wrap(op, err)
	}

	parent, err := c.categoryRepo.GetBySlug(ctx, req.ParentSlug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.Title, req.Slug, &parent.ID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryInfo(category, &parent.Slug), nil
}

// UpdateCategory изменяет название и slug категории.
func (c *CategoryUseCase) UpdateCategory(ctx context.Context, slug string, req *CreateCategoryReq) (*CategoryInfo, error) {
	const op = "CategoryUseCase.UpdateCategory"

	if err := validateCategory(req.Title, req.Slug); err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := c.categoryRepo.Update(ctx, slug, domain.NewCategory(req.Title, req.Slug, nil))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryInfo(category, nil), nil
}

// DeleteCategory удаляет категорию по slug вместе с подкатегориями.
// Товары при этом не удаляются: ссылка на категорию у них обнуляется.
func (c *CategoryUseCase) DeleteCategory(ctx context.Context, slug string) error {
	const op = "CategoryUseCase.DeleteCategory"

	if err := c.categoryRepo.Delete(ctx, slug); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ProductsByCategory возвращает товары категории и всех её подкатегорий на любую глубину.
func (c *CategoryUseCase) ProductsByCategory(ctx context.Context, req *ProductsByCategoryReq) (*ProductsPage, error) {
	const op = "CategoryUseCase.ProductsByCategory"

	root, err := c.categoryRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := c.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	idSet := domain.SubTreeIDs(categories, root.ID)
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	products, err := c.productRepo.ListByCategoryIDs(ctx, ids, req.Limit, req.Offset)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	titles := make(map[int64]string, len(categories))
	for _, cat := range categories {
		titles[cat.ID] = cat.Title
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

func parentSlugOf(category *domain.Category, slugs map[int64]string) *string {
	if category.ParentID == nil {
		return nil
	}
	if slug, ok := slugs[*category.ParentID]; ok {
		return &slug
	}
	return nil
}

func categoryTitleOf(product *domain.Product, titles map[int64]string) string {
	if product.CategoryID == nil {
		return ""
	}
	return titles[*product.CategoryID]
}

// validateCategory проверяет корректность входных данных категории.
func validateCategory(title, slug string) error {
	if strings.TrimSpace(title) == "" {
		return e.ErrTitleRequired
	}

	if strings.TrimSpace(slug) == "" {
		return e.ErrSlugRequired
	}

	return nil
}
