package http

import (
	"net/http"
	"testing"

	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "integer", in: "600", want: 60000},
		{name: "two decimals", in: "599.99", want: 59999},
		{name: "one decimal", in: "35.5", want: 3550},
		{name: "empty", in: "", wantErr: e.ErrInvalidPrice},
		{name: "garbage", in: "abc", wantErr: e.ErrInvalidPrice},
		{name: "negative", in: "-1", wantErr: e.ErrInvalidPrice},
		{name: "at cap", in: "1000000000", want: 100_000_000_000},
		{name: "over cap", in: "1000000000.01", wantErr: e.ErrInvalidPrice},
		{name: "three decimals", in: "1.999", wantErr: e.ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "599.99", formatCents(59999))
	assert.Equal(t, "35.00", formatCents(3500))
	assert.Equal(t, "0.07", formatCents(7))
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.ErrEmptyCart, http.StatusBadRequest},
		{e.ErrOutOfStock, http.StatusBadRequest},
		{e.ErrUnauthorized, http.StatusUnauthorized},
		{e.ErrForbidden, http.StatusForbidden},
		{e.ErrCategoryNotFound, http.StatusNotFound},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrSlugAlreadyTaken, http.StatusConflict},
		{e.ErrEmailAlreadyTaken, http.StatusConflict},
		{e.ErrPaymentRequestFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
	}

	// Обёрнутые ошибки разворачиваются через errors.Is
	code, _ := ToHTTPResponse(e.Wrap("op", e.ErrEmptyCart))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestToHTTPResponse_InsufficientStock(t *testing.T) {
	err := usecase.NewInsufficientStockError(map[string]int64{"pen": 1})

	// Без специальной обработки это внутренняя ошибка; тело с остатками
	// формирует WriteError.
	code, _ := ToHTTPResponse(err)
	assert.Equal(t, http.StatusInternalServerError, code)
}
