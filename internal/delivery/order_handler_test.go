package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"shop_service/internal/domain"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderUseCase struct {
	confirmation *domain.OrderConfirmation
	err          error
	gotCustomer  string
	gotSub       domain.OrderSubmission
}

func (s *stubOrderUseCase) PlaceOrder(_ context.Context, customerID string, sub domain.OrderSubmission) (*domain.OrderConfirmation, error) {
	s.gotCustomer = customerID
	s.gotSub = sub
	if s.err != nil {
		return nil, s.err
	}
	return s.confirmation, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newOrderRouter(uc domain.OrderUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewOrderHandler(uc, quietLogger()).RegisterRoutes(api)
	return router
}

const validOrderBody = `{
	"user": {"name": "王小明", "tel": "0912345678", "address": "台北市"},
	"orders": [{"products_id": "f47ac10b-58cc-4372-a567-0e02b2c3d479", "quantity": 2, "spec": "M", "colors": "red"}],
	"payment_methods": 1
}`

func postOrder(router *gin.Engine, body string, withIdentity bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withIdentity {
		req.Header.Set("X-User-ID", "5e84cdbc-9d2f-4a6b-8a6f-0f9f6f1f8a11")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderHandler_Success(t *testing.T) {
	uc := &stubOrderUseCase{
		confirmation: &domain.OrderConfirmation{
			OrderID:              "3a2d5c1e-77f0-4b4a-9a43-0c2f2b6f62aa",
			PaymentMethodsLabel:  "Credit card",
			PaymentStatusesLabel: domain.InitialPaymentStatusLabel,
			OrderStatusesLabel:   domain.InitialOrderStatusLabel,
			OriginalPrice:        1000,
			Price:                900,
			Discount:             100,
			DeliveryFee:          60,
			TotalPrice:           960,
			CreatedAt:            time.Now(),
		},
	}
	router := newOrderRouter(uc)

	w := postOrder(router, validOrderBody, true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string                   `json:"status"`
		Message string                   `json:"message"`
		Data    domain.OrderConfirmation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "3a2d5c1e-77f0-4b4a-9a43-0c2f2b6f62aa", resp.Data.OrderID)
	assert.Equal(t, 960, resp.Data.TotalPrice)

	assert.Equal(t, "5e84cdbc-9d2f-4a6b-8a6f-0f9f6f1f8a11", uc.gotCustomer)
	require.Len(t, uc.gotSub.Orders, 1)
	assert.Equal(t, 2, uc.gotSub.Orders[0].Quantity)
}

func TestPlaceOrderHandler_MissingIdentity(t *testing.T) {
	router := newOrderRouter(&stubOrderUseCase{})

	w := postOrder(router, validOrderBody, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlaceOrderHandler_MalformedJSON(t *testing.T) {
	router := newOrderRouter(&stubOrderUseCase{})

	w := postOrder(router, `{"user": `, true)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fields incorrect", resp.Message)
	assert.Equal(t, string(domain.KindValidation), resp.Code)
}

func TestPlaceOrderHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "validation failure",
			err:        domain.NewValidationError("fields incorrect"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation",
			wantMsg:    "fields incorrect",
		},
		{
			name:       "unknown products",
			err:        domain.NewReferenceError("some product IDs do not exist"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "reference",
			wantMsg:    "some product IDs do not exist",
		},
		{
			name:       "header write failure",
			err:        domain.NewPersistenceError("order creation failed", domain.ErrOrderInsert),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "persistence",
			wantMsg:    "order creation failed",
		},
		{
			name:       "line item write failure",
			err:        domain.NewPersistenceError("add failed", domain.ErrLineItemInsert),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "persistence",
			wantMsg:    "add failed",
		},
		{
			name:       "timed out persistence call is retryable",
			err:        domain.NewPersistenceError("order creation failed", context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "persistence",
			wantMsg:    "order creation failed",
		},
		{
			name:       "unexpected failure stays generic",
			err:        errors.New("driver: bad connection"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "unexpected",
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newOrderRouter(&stubOrderUseCase{err: tt.err})

			w := postOrder(router, validOrderBody, true)
			require.Equal(t, tt.wantStatus, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "fail", resp.Status)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}
