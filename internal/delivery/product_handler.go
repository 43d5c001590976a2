package delivery

import (
	"net/http"
	"shop_service/internal/domain"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase domain.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc domain.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:products_id", h.GetProductDetail)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	category := c.Query("category")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		h.log.Warnf("Invalid page parameter: %s", pageStr)
		ErrorResponse(c, http.StatusBadRequest, string(domain.KindValidation), "invalid page number")
		return
	}

	result, err := h.useCase.ListProducts(c.Request.Context(), page, category)
	if err != nil {
		h.log.Warnf("Failed to list products (page %d, category '%s'): %v", page, category, err)
		FailFromError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "products retrieved successfully", result)
}

func (h *ProductHandler) GetProductDetail(c *gin.Context) {
	productID := c.Param("products_id")

	detail, err := h.useCase.GetProductDetail(c.Request.Context(), productID)
	if err != nil {
		h.log.Warnf("Failed to get product detail for %s: %v", productID, err)
		FailFromError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "product retrieved successfully", detail)
}
