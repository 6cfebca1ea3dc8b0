package http

import (
	_ "github.com/DRSN-tech/market-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	auth   *AuthMiddleware
	logger logger.Logger
}

func NewRouter(router *chi.Mux, auth *AuthMiddleware, logger logger.Logger) *Router {
	return &Router{router: router, auth: auth, logger: logger}
}

func (r *Router) Init(
	categoryUC usecase.CategoryUC,
	productUC usecase.ProductUC,
	cartUC usecase.CartUC,
	orderUC usecase.OrderUC,
	authUC usecase.AuthUC,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		authHandler := NewAuthHandler(authUC, r.logger)
		categoryHandler := NewCategoryHandler(categoryUC, r.logger)
		productHandler := NewProductHandler(productUC, r.logger)
		cartHandler := NewCartHandler(cartUC, r.logger)
		orderHandler := NewOrderHandler(orderUC, r.logger)

		registerAuthRoutes(v1, authHandler)
		registerCategoryRoutes(v1, categoryHandler, r.auth)
		registerProductRoutes(v1, productHandler, cartHandler, r.auth)
		registerCartRoutes(v1, cartHandler, r.auth)
		registerOrderRoutes(v1, orderHandler, r.auth)
	})
}

func registerAuthRoutes(router chi.Router, h *AuthHandler) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.register)
		auth.Post("/login", h.login)
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler, auth *AuthMiddleware) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", h.listCategories)
		cat.Get("/{slug}", h.getCategory)
		cat.Get("/{slug}/products", h.productsByCategory)

		cat.Group(func(admin chi.Router) {
			admin.Use(auth.Authenticate, auth.RequireAdmin)
			admin.Post("/", h.createCategory)
			admin.Post("/sub", h.createSubCategory)
			admin.Put("/{slug}", h.updateCategory)
			admin.Delete("/{slug}", h.deleteCategory)
		})
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler, cartHandler *CartHandler, auth *AuthMiddleware) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/info", h.getStatistic)
		pr.Get("/{id}", h.getProduct)

		pr.Group(func(user chi.Router) {
			user.Use(auth.Authenticate)
			user.Post("/{id}/to_cart", cartHandler.addToCart)
		})

		pr.Group(func(admin chi.Router) {
			admin.Use(auth.Authenticate, auth.RequireAdmin)
			admin.Post("/", h.createProduct)
			admin.Put("/{id}", h.updateProduct)
			admin.Delete("/{id}", h.deleteProduct)
		})
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler, auth *AuthMiddleware) {
	router.Group(func(user chi.Router) {
		user.Use(auth.Authenticate)
		user.Get("/cart", h.getCart)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler, auth *AuthMiddleware) {
	router.Route("/orders", func(orders chi.Router) {
		orders.Use(auth.Authenticate)
		orders.Post("/", h.placeOrder)
		orders.Get("/", h.listOrders)
	})
}
