package converter

import (
	"github.com/DRSN-tech/market-backend/internal/usecase"
)

type ProductDetailConverterImpl struct{}

func NewProductDetailConverterImpl() *ProductDetailConverterImpl {
	return &ProductDetailConverterImpl{}
}

func (c *ProductDetailConverterImpl) ToRedisModel(entity *usecase.ProductDetail) *ProductDetailRedisModel {
	if entity == nil {
		return nil
	}

	return &ProductDetailRedisModel{
		ID:               entity.ID,
		Title:            entity.Title,
		Price:            entity.Price,
		DiscountPrice:    entity.DiscountPrice,
		Balance:          entity.Balance,
		Description:      entity.Description,
		ShortDescription: entity.ShortDescription,
		CategoryTitle:    entity.CategoryTitle,
	}
}

func (c *ProductDetailConverterImpl) ToUseCase(model *ProductDetailRedisModel) *usecase.ProductDetail {
	if model == nil {
		return nil
	}

	return &usecase.ProductDetail{
		ID:               model.ID,
		Title:            model.Title,
		Price:            model.Price,
		DiscountPrice:    model.DiscountPrice,
		Balance:          model.Balance,
		Description:      model.Description,
		ShortDescription: model.ShortDescription,
		CategoryTitle:    model.CategoryTitle,
	}
}

func (c *ProductDetailConverterImpl) ToArrRedisModel(entities []usecase.ProductDetail) []ProductDetailRedisModel {
	models := make([]ProductDetailRedisModel, len(entities))
	for i := range entities {
		models[i] = *c.ToRedisModel(&entities[i])
	}

	return models
}

func (c *ProductDetailConverterImpl) ToArrUseCase(models []ProductDetailRedisModel) []usecase.ProductDetail {
	entities := make([]usecase.ProductDetail, len(models))
	for i := range models {
		entities[i] = *c.ToUseCase(&models[i])
	}

	return entities
}
