package converter

import (
	"github.com/DRSN-tech/market-backend/internal/usecase"
)

// ProductDetailConverter преобразует товары между usecase и моделью кэша Redis.
type ProductDetailConverter interface {
	ToRedisModel(entity *usecase.ProductDetail) *ProductDetailRedisModel
	ToUseCase(model *ProductDetailRedisModel) *usecase.ProductDetail
	ToArrRedisModel(entities []usecase.ProductDetail) []ProductDetailRedisModel
	ToArrUseCase(models []ProductDetailRedisModel) []usecase.ProductDetail
}
