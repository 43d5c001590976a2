package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"shop_service/internal/domain"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductUseCase struct {
	page        *domain.ProductPage
	detail      *domain.ProductDetail
	err         error
	gotPage     int
	gotCategory string
}

func (s *stubProductUseCase) ListProducts(_ context.Context, page int, category string) (*domain.ProductPage, error) {
	s.gotPage = page
	s.gotCategory = category
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

func (s *stubProductUseCase) GetProductDetail(_ context.Context, productID string) (*domain.ProductDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func newProductRouter(uc domain.ProductUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewProductHandler(uc, quietLogger()).RegisterRoutes(api)
	return router
}

func TestListProductsHandler(t *testing.T) {
	uc := &stubProductUseCase{
		page: &domain.ProductPage{
			Pagination: domain.Pagination{CurrentPage: 2, TotalPage: 3},
			Products: []domain.ProductSummary{
				{ID: "f47ac10b-58cc-4372-a567-0e02b2c3d479", Name: "Classic tee", Category: "tops", Price: 450},
			},
		},
	}
	router := newProductRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=2&category=tops", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, uc.gotPage)
	assert.Equal(t, "tops", uc.gotCategory)

	var resp struct {
		Status string             `json:"status"`
		Data   domain.ProductPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 3, resp.Data.Pagination.TotalPage)
	require.Len(t, resp.Data.Products, 1)
	assert.Equal(t, "Classic tee", resp.Data.Products[0].Name)
}

func TestListProductsHandler_DefaultsPage(t *testing.T) {
	uc := &stubProductUseCase{page: &domain.ProductPage{}}
	router := newProductRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, uc.gotPage)
}

func TestListProductsHandler_BadPage(t *testing.T) {
	router := newProductRouter(&stubProductUseCase{})

	for _, page := range []string{"abc", "0", "-2", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page="+page, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "page=%s", page)
	}
}

func TestGetProductDetailHandler_NotFound(t *testing.T) {
	uc := &stubProductUseCase{
		err: &domain.Error{Kind: domain.KindReference, Message: "product not found", Err: domain.ErrNotFound},
	}
	router := newProductRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/f47ac10b-58cc-4372-a567-0e02b2c3d479", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Code)
	assert.Equal(t, "product not found", resp.Message)
}

func TestGetProductDetailHandler_Success(t *testing.T) {
	uc := &stubProductUseCase{
		detail: &domain.ProductDetail{
			ID:       "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			Name:     "Classic tee",
			Category: "tops",
			Variants: []domain.ProductVariant{{Colors: "black", Size: "M", Quantity: 20}},
		},
	}
	router := newProductRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/f47ac10b-58cc-4372-a567-0e02b2c3d479", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data domain.ProductDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Classic tee", resp.Data.Name)
	require.Len(t, resp.Data.Variants, 1)
}
