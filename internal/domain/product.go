package domain

import "time"

// Product описывает товар каталога.
type Product struct {
	ID               int64
	Title            string
	Price            int64 // Цена хранится в копейках
	DiscountPrice    int64 // Цена со скидкой, в копейках
	Balance          int64 // Остаток на складе
	Description      string
	ShortDescription string
	CategoryID       *int64
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

func NewProduct(title string, price, discountPrice, balance int64, description, shortDescription string, categoryID *int64) *Product {
	return &Product{
		Title:            title,
		Price:            price,
		DiscountPrice:    discountPrice,
		Balance:          balance,
		Description:      description,
		ShortDescription: shortDescription,
		CategoryID:       categoryID,
	}
}
