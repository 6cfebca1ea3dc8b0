package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrTitleRequired       = fmt.Errorf("title is required")
	ErrSlugRequired        = fmt.Errorf("slug is required")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrInvalidBalance      = fmt.Errorf("balance must be non-negative")
	ErrEmptyCart           = fmt.Errorf("cart is empty")
	ErrOutOfStock          = fmt.Errorf("not enough amount")
	ErrEmailRequired       = fmt.Errorf("email is required")
	ErrPasswordTooShort    = fmt.Errorf("password is too short")
	ErrStatusBadRequest    = fmt.Errorf("bad request")

	// 401 / 403
	ErrUnauthorized     = fmt.Errorf("unauthorized")
	ErrForbidden        = fmt.Errorf("forbidden")
	ErrWrongCredentials = fmt.Errorf("wrong email or password")

	// 404 Not Found
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")
	ErrUserNotFound     = fmt.Errorf("user not found")

	// 409 Conflict
	ErrEmailAlreadyTaken = fmt.Errorf("email already taken")
	ErrSlugAlreadyTaken  = fmt.Errorf("slug already taken")

	// Ошибки платёжного сервиса
	ErrPaymentRequestFailed = fmt.Errorf("request to payment service failed")
	ErrPaymentBadResponse   = fmt.Errorf("payment service returned malformed response")

	// 500
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
