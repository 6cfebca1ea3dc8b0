package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/market-backend/internal/cfg"
	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(url string) *Gateway {
	return NewGateway(&cfg.PaymentCfg{
		URL:     url,
		Token:   "test-token",
		Timeout: 2 * time.Second,
	}, logger.NewSlogLogger())
}

func TestCreatePayment_SendsTokenAndParsesResponse(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"orderId": "ext-42",
			"url":     "https://pay.example.com/42",
		})
	}))
	defer srv.Close()

	gateway := newTestGateway(srv.URL)

	res, err := gateway.CreatePayment(context.Background(), usecase.NewPaymentReq(35.0, 5, "buyer@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "ext-42", res.OrderID)
	assert.Equal(t, "https://pay.example.com/42", res.URL)

	assert.Equal(t, "test-token", gotBody["api_token"])
	assert.Equal(t, 35.0, gotBody["amount"])
	assert.Equal(t, float64(5), gotBody["items_qty"])
	assert.Equal(t, "buyer@example.com", gotBody["user_email"])
}

func TestCreatePayment_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gateway := newTestGateway(srv.URL)

	_, err := gateway.CreatePayment(context.Background(), usecase.NewPaymentReq(1.0, 1, "buyer@example.com"))
	require.ErrorIs(t, err, e.ErrPaymentRequestFailed)
}

func TestCreatePayment_MissingKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"orderId": "ext-42"})
	}))
	defer srv.Close()

	gateway := newTestGateway(srv.URL)

	_, err := gateway.CreatePayment(context.Background(), usecase.NewPaymentReq(1.0, 1, "buyer@example.com"))
	require.ErrorIs(t, err, e.ErrPaymentBadResponse)
}

func TestCreatePayment_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	gateway := newTestGateway(srv.URL)

	_, err := gateway.CreatePayment(context.Background(), usecase.NewPaymentReq(1.0, 1, "buyer@example.com"))
	require.ErrorIs(t, err, e.ErrPaymentBadResponse)
}
