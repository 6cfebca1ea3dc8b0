package converter

import (
	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/internal/usecase"
)

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (c *CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:       entity.ID,
		Title:    entity.Title,
		Slug:     entity.Slug,
		ParentID: entity.ParentID,
	}
}

func (c *CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	return &domain.Category{
		ID:       model.ID,
		Title:    model.Title,
		Slug:     model.Slug,
		ParentID: model.ParentID,
	}
}

func (c *CategoryConverterImpl) ToArrEntity(models []*CategoryModel) []domain.Category {
	result := make([]domain.Category, 0, len(models))
	for _, model := range models {
		result = append(result, *c.ToEntity(model))
	}

	return result
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:               entity.ID,
		Title:            entity.Title,
		Price:            entity.Price,
		DiscountPrice:    entity.DiscountPrice,
		Balance:          entity.Balance,
		Description:      entity.Description,
		ShortDescription: entity.ShortDescription,
		CategoryID:       entity.CategoryID,
		CreatedAt:        entity.CreatedAt,
		UpdatedAt:        entity.UpdatedAt,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:               model.ID,
		Title:            model.Title,
		Price:            model.Price,
		DiscountPrice:    model.DiscountPrice,
		Balance:          model.Balance,
		Description:      model.Description,
		ShortDescription: model.ShortDescription,
		CategoryID:       model.CategoryID,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func (c *ProductConverterImpl) ToArrEntity(models []*ProductModel) []domain.Product {
	result := make([]domain.Product, 0, len(models))
	for _, model := range models {
		result = append(result, *c.ToEntity(model))
	}

	return result
}

type OrderConverterImpl struct{}

func NewOrderConverterImpl() *OrderConverterImpl {
	return &OrderConverterImpl{}
}

func (c *OrderConverterImpl) ToModel(entity *domain.Order) *OrderModel {
	return &OrderModel{
		ID:         entity.ID,
		UserID:     entity.UserID,
		Quantity:   entity.Quantity,
		TotalCost:  entity.TotalCost,
		IsPayed:    entity.IsPayed,
		ExternalID: entity.ExternalID,
		PaymentURL: entity.PaymentURL,
		CreatedAt:  entity.CreatedAt,
	}
}

func (c *OrderConverterImpl) ToEntity(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:         model.ID,
		UserID:     model.UserID,
		Quantity:   model.Quantity,
		TotalCost:  model.TotalCost,
		IsPayed:    model.IsPayed,
		ExternalID: model.ExternalID,
		PaymentURL: model.PaymentURL,
		CreatedAt:  model.CreatedAt,
	}
}

func (c *OrderConverterImpl) ToArrEntity(models []*OrderModel) []domain.Order {
	result := make([]domain.Order, 0, len(models))
	for _, model := range models {
		result = append(result, *c.ToEntity(model))
	}

	return result
}

type UserConverterImpl struct{}

func NewUserConverterImpl() *UserConverterImpl {
	return &UserConverterImpl{}
}

func (c *UserConverterImpl) ToModel(entity *domain.User) *UserModel {
	return &UserModel{
		ID:           entity.ID,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		IsAdmin:      entity.IsAdmin,
		CreatedAt:    entity.CreatedAt,
	}
}

func (c *UserConverterImpl) ToEntity(model *UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		IsAdmin:      model.IsAdmin,
		CreatedAt:    model.CreatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (c *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}
