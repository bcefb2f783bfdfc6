package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
)

func testSubmission() *entity.OrderSubmission {
	return &entity.OrderSubmission{
		OrderNumber: "ORD-1757600000000-abcd1234",
		PlacedAt:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Lines: []entity.SubmissionLine{
			{ItemID: 101, Quantity: 2, UnitPrice: decimal.NewFromInt(100), Subtotal: decimal.NewFromInt(200)},
			{ItemID: 202, Quantity: 1, UnitPrice: decimal.NewFromInt(50), Subtotal: decimal.NewFromInt(50)},
		},
		TotalLines:  2,
		TotalUnits:  3,
		TotalAmount: decimal.NewFromInt(250),
		Customer: entity.CustomerInfo{
			Name:        "Abel Construction",
			Phone:       "+251911000000",
			CompanyType: "Partnership",
			TINNumber:   "0012345678",
		},
	}
}

func TestClient_PlaceOrder_RequestShape(t *testing.T) {
	var got placeOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/commerce-orders/receive", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(placeOrderResponse{Success: true, Message: "ok", OrderID: "BK-77"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	receipt, err := c.PlaceOrder(context.Background(), testSubmission())

	require.NoError(t, err)
	assert.Equal(t, "BK-77", receipt.OrderID)
	assert.Equal(t, "ok", receipt.Message)

	require.Len(t, got.Items, 2)
	assert.Equal(t, wireOrderItem{ItemID: 101, Quantity: 2}, got.Items[0])
	assert.Equal(t, wireOrderItem{ItemID: 202, Quantity: 1}, got.Items[1])
	assert.Equal(t, "Abel Construction", got.CustomerInfo.Name)
	assert.Equal(t, "+251911000000", got.CustomerInfo.Phone)
	assert.Equal(t, "Partnership", got.CustomerInfo.CompanyType)
	assert.Equal(t, "0012345678", got.CustomerInfo.TINNumber)
}

func TestClient_PlaceOrder_NonOKStatusIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.PlaceOrder(context.Background(), testSubmission())

	var uerr *entity.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, http.StatusInternalServerError, uerr.StatusCode)
}

func TestClient_PlaceOrder_RejectedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(placeOrderResponse{Success: false, Message: "item 101 unknown"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.PlaceOrder(context.Background(), testSubmission())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 101 unknown")
}

func TestClient_PlaceOrder_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil)
	_, err := c.PlaceOrder(context.Background(), testSubmission())

	assert.Error(t, err)
}
