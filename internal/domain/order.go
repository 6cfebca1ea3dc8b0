package domain

import "time"

// Order описывает заказ, созданный из снимка корзины на момент оформления.
// ExternalID и PaymentURL заполняются асинхронно платёжной задачей;
// до этого момента они пусты, а заказ находится в состоянии «ожидает ссылку на оплату».
type Order struct {
	ID         int64
	UserID     *int64
	Quantity   int64
	TotalCost  int64 // Сумма к оплате, в копейках
	IsPayed    bool
	ExternalID *string // Номер заказа во внешней платёжной системе
	PaymentURL *string
	CreatedAt  time.Time
}

func NewOrder(userID int64, quantity, totalCost int64) *Order {
	return &Order{
		UserID:    &userID,
		Quantity:  quantity,
		TotalCost: totalCost,
	}
}
