package converter

// ProductDetailRedisModel — JSON-представление товара в кэше Redis.
type ProductDetailRedisModel struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Price            int64  `json:"price"`
	DiscountPrice    int64  `json:"discount_price"`
	Balance          int64  `json:"balance"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	CategoryTitle    string `json:"category_title"`
}
