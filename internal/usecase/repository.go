package usecase

import (
	"context"

	"github.com/DRSN-tech/market-backend/internal/domain"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, slug string, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, slug string) error
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, limit, offset int64) ([]domain.Product, error)
	ListByCategoryIDs(ctx context.Context, categoryIDs []int64, limit, offset int64) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	GetStatistic(ctx context.Context) (*StatisticRes, error)
}

type CartRepository interface {
	// AddOne идемпотентно добавляет товар в корзину: новая позиция
	// создаётся с количеством 1, существующая — инкрементируется.
	AddOne(ctx context.Context, userID, productID int64) error
	GetLines(ctx context.Context, userID int64) ([]domain.CartLine, error)
	// GetLinesForUpdate читает позиции корзины внутри транзакции из контекста,
	// блокируя строки товаров до конца транзакции.
	GetLinesForUpdate(ctx context.Context, userID int64) ([]domain.CartLine, error)
	// Clear удаляет все позиции корзины пользователя внутри транзакции из контекста.
	Clear(ctx context.Context, userID int64) error
}

type OrderRepository interface {
	// Create сохраняет заказ внутри транзакции из контекста.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	// SetPaymentInfo записывает внешний номер заказа и ссылку на оплату.
	SetPaymentInfo(ctx context.Context, id int64, externalID, paymentURL string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type OutboxRepository interface {
	// Create сохраняет событие внутри транзакции из контекста
	// и уведомляет воркер через NOTIFY.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductDetail, error)
	SetProducts(ctx context.Context, products []ProductDetail) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
