package converter

import "time"

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Slug     string `db:"slug"`
	ParentID *int64 `db:"parent_id"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID               int64      `db:"id"`
	Title            string     `db:"title"`
	Price            int64      `db:"price"`
	DiscountPrice    int64      `db:"discount_price"`
	Balance          int64      `db:"balance"`
	Description      string     `db:"description"`
	ShortDescription string     `db:"short_description"`
	CategoryID       *int64     `db:"category_id"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID         int64     `db:"id"`
	UserID     *int64    `db:"user_id"`
	Quantity   int64     `db:"quantity"`
	TotalCost  int64     `db:"total_cost"`
	IsPayed    bool      `db:"is_payed"`
	ExternalID *string   `db:"order_id"`
	PaymentURL *string   `db:"payment_url"`
	CreatedAt  time.Time `db:"created_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
