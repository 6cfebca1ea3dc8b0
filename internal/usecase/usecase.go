package usecase

import "context"

type CategoryUC interface {
	ListCategories(ctx context.Context) ([]CategoryInfo, error)
	GetCategory(ctx context.Context, slug string) (*CategoryInfo, error)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*CategoryInfo, error)
	CreateSubCategory(ctx context.Context, req *CreateSubCategoryReq) (*CategoryInfo, error)
	UpdateCategory(ctx context.Context, slug string, req *CreateCategoryReq) (*CategoryInfo, error)
	DeleteCategory(ctx context.Context, slug string) error
	ProductsByCategory(ctx context.Context, req *ProductsByCategoryReq) (*ProductsPage, error)
}

type ProductUC interface {
	ListProducts(ctx context.Context, req *PageReq) (*ProductsPage, error)
	GetProduct(ctx context.Context, id int64) (*ProductDetail, error)
	CreateProduct(ctx context.Context, req *SaveProductReq) (*ProductDetail, error)
	UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) (*ProductDetail, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetStatistic(ctx context.Context) (*StatisticRes, error)
}

type CartUC interface {
	AddToCart(ctx context.Context, userID, productID int64) error
	GetCart(ctx context.Context, userID int64) ([]CartLineInfo, error)
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, userID int64) (*PlaceOrderRes, error)
	ListOrders(ctx context.Context, userID int64) ([]OrderInfo, error)
}

// PaymentUC — логика асинхронной платёжной задачи.
// Вызывается воркером очереди, а не HTTP-обработчиками.
type PaymentUC interface {
	ProcessPayment(ctx context.Context, orderID int64) error
}

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*UserInfo, error)
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
}
