package delivery

import (
	"net/http"
	"shop_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase domain.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc domain.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/category")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var requestBody struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, string(domain.KindValidation), "invalid request body")
		return
	}

	category, err := h.useCase.CreateCategory(c.Request.Context(), requestBody.Name, requestBody.Description)
	if err != nil {
		h.log.Warnf("Failed to create category '%s': %v", requestBody.Name, err)
		FailFromError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "category created successfully", category)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		FailFromError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "categories retrieved successfully", categories)
}
