package usecase

import (
	"fmt"
	"time"

	"github.com/DRSN-tech/market-backend/internal/domain"
)

// CATEGORY USECASE

// CreateCategoryReq — запрос на создание или изменение категории.
type CreateCategoryReq struct {
	Title string
	Slug  string
}

// CreateSubCategoryReq — запрос на создание подкатегории по slug родителя.
type CreateSubCategoryReq struct {
	Title      string
	Slug       string
	ParentSlug string
}

// CategoryInfo — DTO категории для внешнего использования.
type CategoryInfo struct {
	ID         int64
	Title      string
	Slug       string
	ParentSlug *string
}

// ProductsByCategoryReq — запрос товаров категории и всех её подкатегорий.
type ProductsByCategoryReq struct {
	Slug   string
	Limit  int64
	Offset int64
}

// PRODUCT USECASE

type PageReq struct {
	Limit  int64
	Offset int64
}

// SaveProductReq — запрос на создание или изменение товара.
type SaveProductReq struct {
	Title            string
	Price            int64 // в копейках
	DiscountPrice    int64 // в копейках
	Balance          int64
	Description      string
	ShortDescription string
	CategorySlug     string
}

// ProductDetail — DTO товара с полными данными.
type ProductDetail struct {
	ID               int64
	Title            string
	Price            int64
	DiscountPrice    int64
	Balance          int64
	Description      string
	ShortDescription string
	CategoryTitle    string
}

// ProductsPage — страница списка товаров.
type ProductsPage struct {
	Products []ProductDetail
	Limit    int64
	Offset   int64
}

// StatisticRes — минимальная и максимальная цена и суммарный остаток по всем товарам.
type StatisticRes struct {
	MinPrice   *int64
	MaxPrice   *int64
	TotalCount int64
}

// CART / ORDER USECASE

// CartLineInfo — DTO позиции корзины.
type CartLineInfo struct {
	ProductID    int64
	ProductTitle string
	Amount       int64
	Price        int64
}

// PlaceOrderRes — результат оформления заказа.
type PlaceOrderRes struct {
	OrderID   int64
	Quantity  int64
	TotalCost int64
}

// OrderInfo — DTO заказа для внешнего использования.
type OrderInfo struct {
	ID         int64
	Quantity   int64
	TotalCost  int64
	IsPayed    bool
	PaymentURL *string
	CreatedAt  time.Time
}

// InsufficientStockError возвращается при оформлении заказа, когда хотя бы по
// одной позиции корзины запрошено больше, чем есть на складе. Содержит
// отображение «название товара → доступный остаток».
type InsufficientStockError struct {
	Shortfalls map[string]int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("max available count for this product: %v", e.Shortfalls)
}

func NewInsufficientStockError(shortfalls map[string]int64) *InsufficientStockError {
	return &InsufficientStockError{Shortfalls: shortfalls}
}

// AUTH USECASE

type RegisterReq struct {
	Email    string
	Password string
}

type LoginReq struct {
	Email    string
	Password string
}

type LoginRes struct {
	Token string
}

// UserInfo — DTO пользователя для внешнего использования.
type UserInfo struct {
	ID    int64
	Email string
}

// INFRASTRUCTURE

// PaymentReq — запрос на создание платежа во внешнем сервисе.
type PaymentReq struct {
	Amount    float64
	ItemsQty  int64
	UserEmail string
}

// PaymentRes — ответ внешнего платёжного сервиса.
type PaymentRes struct {
	OrderID string
	URL     string
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const PaymentRequested OutboxEventType = "payment_requested"

// OutboxEvent — событие транзакционного outbox, публикуемое воркером в очередь.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewCategoryInfo(category *domain.Category, parentSlug *string) *CategoryInfo {
	return &CategoryInfo{
		ID:         category.ID,
		Title:      category.Title,
		Slug:       category.Slug,
		ParentSlug: parentSlug,
	}
}

func NewProductDetail(product *domain.Product, categoryTitle string) *ProductDetail {
	return &ProductDetail{
		ID:               product.ID,
		Title:            product.Title,
		Price:            product.Price,
		DiscountPrice:    product.DiscountPrice,
		Balance:          product.Balance,
		Description:      product.Description,
		ShortDescription: product.ShortDescription,
		CategoryTitle:    categoryTitle,
	}
}

func NewCartLineInfo(line domain.CartLine) CartLineInfo {
	return CartLineInfo{
		ProductID:    line.ProductID,
		ProductTitle: line.ProductTitle,
		Amount:       line.Amount,
		Price:        line.Price,
	}
}

func NewPlaceOrderRes(order *domain.Order) *PlaceOrderRes {
	return &PlaceOrderRes{
		OrderID:   order.ID,
		Quantity:  order.Quantity,
		TotalCost: order.TotalCost,
	}
}

func NewOrderInfo(order domain.Order) OrderInfo {
	return OrderInfo{
		ID:         order.ID,
		Quantity:   order.Quantity,
		TotalCost:  order.TotalCost,
		IsPayed:    order.IsPayed,
		PaymentURL: order.PaymentURL,
		CreatedAt:  order.CreatedAt,
	}
}

func NewUserInfo(user *domain.User) *UserInfo {
	return &UserInfo{
		ID:    user.ID,
		Email: user.Email,
	}
}

func NewPaymentReq(amount float64, itemsQty int64, userEmail string) *PaymentReq {
	return &PaymentReq{
		Amount:    amount,
		ItemsQty:  itemsQty,
		UserEmail: userEmail,
	}
}

func NewPaymentRes(orderID, url string) *PaymentRes {
	return &PaymentRes{
		OrderID: orderID,
		URL:     url,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
