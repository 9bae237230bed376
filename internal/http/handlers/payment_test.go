package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payment_webapp/internal/razorpay"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newPaymentRouter wires the payment routes with a stubbed authenticated
// user, bypassing the JWT middleware.
func newPaymentRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", int64(1))
		c.Next()
	})
	r.POST("/create-order", h.CreateOrder)
	r.POST("/verify-payment", h.VerifyPayment)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_RejectsNonPositiveAmount(t *testing.T) {
	h := &Handler{}
	r := newPaymentRouter(h)

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`} {
		w := doJSON(r, http.MethodPost, "/create-order", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestCreateOrder_ReturnsGatewayOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(razorpay.Order{
			ID:       "order_abc",
			Amount:   req.Amount,
			Currency: req.Currency,
			Status:   "created",
		})
	}))
	defer srv.Close()

	h := &Handler{Gateway: razorpay.NewClientWithBaseURL(srv.URL, "k", "s", "INR")}
	r := newPaymentRouter(h)

	w := doJSON(r, http.MethodPost, "/create-order", `{"amount":100}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Order   razorpay.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "order_abc", resp.Order.ID)
	require.Equal(t, int64(10000), resp.Order.Amount)
	require.Equal(t, "INR", resp.Order.Currency)
}

func TestCreateOrder_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	h := &Handler{Gateway: razorpay.NewClientWithBaseURL(srv.URL, "k", "s", "INR")}
	r := newPaymentRouter(h)

	w := doJSON(r, http.MethodPost, "/create-order", `{"amount":100}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestVerifyPayment_MissingPaymentDetails(t *testing.T) {
	h := &Handler{GatewaySecret: "secret"}
	r := newPaymentRouter(h)

	bodies := []string{
		`{}`,
		`{"razorpay_order_id":"o"}`,
		`{"razorpay_order_id":"o","razorpay_payment_id":"p"}`,
		`{"razorpay_payment_id":"p","razorpay_signature":"s"}`,
	}
	for _, body := range bodies {
		w := doJSON(r, http.MethodPost, "/verify-payment", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		require.Contains(t, w.Body.String(), "Missing payment details")
	}
}

func TestVerifyPayment_MissingTransactionDetails(t *testing.T) {
	h := &Handler{GatewaySecret: "secret"}
	r := newPaymentRouter(h)

	sig := razorpay.Sign("o", "p", "secret")

	// valid identifiers but bad amount / method
	bodies := []string{
		`{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"` + sig + `"}`,
		`{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"` + sig + `","amount":100,"paymentMethod":"NetBanking"}`,
		`{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"` + sig + `","amount":-1,"paymentMethod":"UPI"}`,
	}
	for _, body := range bodies {
		w := doJSON(r, http.MethodPost, "/verify-payment", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		require.Contains(t, w.Body.String(), "Missing transaction details")
	}
}

func TestVerifyPayment_TamperedSignature(t *testing.T) {
	h := &Handler{GatewaySecret: "secret"}
	r := newPaymentRouter(h)

	body := `{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"deadbeef","amount":100,"paymentMethod":"Card"}`
	w := doJSON(r, http.MethodPost, "/verify-payment", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Payment verification failed")
}
