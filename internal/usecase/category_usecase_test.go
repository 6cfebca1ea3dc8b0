package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryRepoMock struct {
	categories []domain.Category
	bySlug     map[string]*domain.Category
	created    *domain.Category
}

func (m *categoryRepoMock) GetAll(ctx context.Context) ([]domain.Category, error) {
	return m.categories, nil
}

func (m *categoryRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if cat, ok := m.bySlug[slug]; ok {
		return cat, nil
	}
	return nil, e.ErrCategoryNotFound
}

func (m *categoryRepoMock) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	m.created = category
	created := *category
	created.ID = 100
	return &created, nil
}

func (m *categoryRepoMock) Update(ctx context.Context, slug string, category *domain.Category) (*domain.Category, error) {
	return category, nil
}

func (m *categoryRepoMock) Delete(ctx context.Context, slug string) error {
	return nil
}

type productRepoMock struct {
	products   []domain.Product
	byID       map[int64]*domain.Product
	gotListIDs []int64
}

func (m *productRepoMock) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if product, ok := m.byID[id]; ok {
		return product, nil
	}
	return nil, e.ErrProductNotFound
}

func (m *productRepoMock) List(ctx context.Context, limit, offset int64) ([]domain.Product, error) {
	return m.products, nil
}

func (m *productRepoMock) ListByCategoryIDs(ctx context.Context, categoryIDs []int64, limit, offset int64) ([]domain.Product, error) {
	m.gotListIDs = categoryIDs
	idSet := make(map[int64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		idSet[id] = struct{}{}
	}

	var result []domain.Product
	for _, product := range m.products {
		if product.CategoryID == nil {
			continue
		}
		if _, ok := idSet[*product.CategoryID]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func (m *productRepoMock) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (m *productRepoMock) Update(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (m *productRepoMock) Delete(ctx context.Context, id int64) error {
	return nil
}

func (m *productRepoMock) GetStatistic(ctx context.Context) (*StatisticRes, error) {
	return &StatisticRes{}, nil
}

func catID(v int64) *int64 {
	return &v
}

func newCategoryTree() *categoryRepoMock {
	categories := []domain.Category{
		{ID: 1, Title: "Electronics", Slug: "electronics"},
		{ID: 2, Title: "Laptops", Slug: "laptops", ParentID: catID(1)},
		{ID: 3, Title: "Gaming", Slug: "gaming", ParentID: catID(2)},
		{ID: 4, Title: "Books", Slug: "books"},
	}

	bySlug := make(map[string]*domain.Category, len(categories))
	for i := range categories {
		bySlug[categories[i].Slug] = &categories[i]
	}

	return &categoryRepoMock{categories: categories, bySlug: bySlug}
}

func TestProductsByCategory_IncludesSubTreeOnly(t *testing.T) {
	categoryRepo := newCategoryTree()
	productRepo := &productRepoMock{
		products: []domain.Product{
			{ID: 1, Title: "tv", CategoryID: catID(1)},
			{ID: 2, Title: "ultrabook", CategoryID: catID(2)},
			{ID: 3, Title: "gaming laptop", CategoryID: catID(3)},
			{ID: 4, Title: "novel", CategoryID: catID(4)},
		},
	}

	uc := NewCategoryUC(categoryRepo, productRepo, logger.NewSlogLogger())

	page, err := uc.ProductsByCategory(context.Background(), &ProductsByCategoryReq{Slug: "electronics", Limit: 20})
	require.NoError(t, err)

	require.Len(t, page.Products, 3)
	assert.ElementsMatch(t, []int64{1, 2, 3}, productRepo.gotListIDs)

	titles := make([]string, 0, len(page.Products))
	for _, product := range page.Products {
		titles = append(titles, product.Title)
	}
	assert.NotContains(t, titles, "novel")
}

func TestProductsByCategory_MidTreeSlug(t *testing.T) {
	categoryRepo := newCategoryTree()
	productRepo := &productRepoMock{
		products: []domain.Product{
			{ID: 1, Title: "tv", CategoryID: catID(1)},
			{ID: 3, Title: "gaming laptop", CategoryID: catID(3)},
		},
	}

	uc := NewCategoryUC(categoryRepo, productRepo, logger.NewSlogLogger())

	page, err := uc.ProductsByCategory(context.Background(), &ProductsByCategoryReq{Slug: "laptops", Limit: 20})
	require.NoError(t, err)

	require.Len(t, page.Products, 1)
	assert.Equal(t, "gaming laptop", page.Products[0].Title)
	assert.Equal(t, "Gaming", page.Products[0].CategoryTitle)
}

func TestProductsByCategory_UnknownSlug(t *testing.T) {
	uc := NewCategoryUC(newCategoryTree(), &productRepoMock{}, logger.NewSlogLogger())

	_, err := uc.ProductsByCategory(context.Background(), &ProductsByCategoryReq{Slug: "toys", Limit: 20})
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
}

func TestCreateSubCategory_ResolvesParentBySlug(t *testing.T) {
	categoryRepo := newCategoryTree()
	uc := NewCategoryUC(categoryRepo, &productRepoMock{}, logger.NewSlogLogger())

	info, err := uc.CreateSubCategory(context.Background(), &CreateSubCategoryReq{
		Title:      "Tablets",
		Slug:       "tablets",
		ParentSlug: "electronics",
	})
	require.NoError(t, err)

	require.NotNil(t, categoryRepo.created.ParentID)
	assert.Equal(t, int64(1), *categoryRepo.created.ParentID)
	require.NotNil(t, info.ParentSlug)
	assert.Equal(t, "electronics", *info.ParentSlug)
}

func TestCreateSubCategory_UnknownParent(t *testing.T) {
	uc := NewCategoryUC(newCategoryTree(), &productRepoMock{}, logger.NewSlogLogger())

	_, err := uc.CreateSubCategory(context.Background(), &CreateSubCategoryReq{
		Title:      "Tablets",
		Slug:       "tablets",
		ParentSlug: "missing",
	})
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
}

func TestCreateCategory_Validation(t *testing.T) {
	uc := NewCategoryUC(newCategoryTree(), &productRepoMock{}, logger.NewSlogLogger())

	_, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{Title: "  ", Slug: "x"})
	require.ErrorIs(t, err, e.ErrTitleRequired)

	_, err = uc.CreateCategory(context.Background(), &CreateCategoryReq{Title: "X", Slug: ""})
	require.ErrorIs(t, err, e.ErrSlugRequired)
}

func TestListCategories_ParentSlugResolved(t *testing.T) {
	uc := NewCategoryUC(newCategoryTree(), &productRepoMock{}, logger.NewSlogLogger())

	categories, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 4)

	bySlug := make(map[string]CategoryInfo, len(categories))
	for _, cat := range categories {
		bySlug[cat.Slug] = cat
	}

	assert.Nil(t, bySlug["electronics"].ParentSlug)
	require.NotNil(t, bySlug["laptops"].ParentSlug)
	assert.Equal(t, "electronics", *bySlug["laptops"].ParentSlug)
}
