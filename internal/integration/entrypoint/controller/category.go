package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	categoryRepo adapter.CategoryRepository
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(categoryRepo adapter.CategoryRepository) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
	}
}

// List handles GET /api/v1/categories requests. Categories are shared
// reference data, not user-scoped.
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryRepo.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}
