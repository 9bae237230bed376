package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateOrder_MinorUnitsAndAuth(t *testing.T) {
	var got createOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key-id", user)
		require.Equal(t, "key-secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Order{
			ID:       "order_test1",
			Amount:   got.Amount,
			Currency: got.Currency,
			Receipt:  got.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "key-id", "key-secret", "INR")

	order, err := c.CreateOrder(context.Background(), 100)
	require.NoError(t, err)

	require.Equal(t, "order_test1", order.ID)
	require.Equal(t, int64(10000), order.Amount)
	require.Equal(t, "INR", order.Currency)
	require.True(t, strings.HasPrefix(got.Receipt, "receipt_"))
}

func TestCreateOrder_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"description":"Authentication failed"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "key-id", "bad-secret", "INR")

	_, err := c.CreateOrder(context.Background(), 50)
	require.Error(t, err)
	require.Contains(t, err.Error(), "razorpay API error")
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		major float64
		want  int64
	}{
		{100, 10000},
		{0.01, 1},
		{1.5, 150},
		{99.99, 9999},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, MinorUnits(tc.major), "major=%v", tc.major)
	}
}
