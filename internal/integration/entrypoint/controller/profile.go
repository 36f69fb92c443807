package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-pulse/backend/internal/application/usecase/profile"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/dto"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles profile endpoints.
type ProfileController struct {
	getUseCase    *profile.GetProfileUseCase
	updateUseCase *profile.UpdateProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *profile.GetProfileUseCase,
	updateUseCase *profile.UpdateProfileUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /api/v1/profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(found))
}

// Update handles PATCH /api/v1/profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		UserID:      userID,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(updated))
}

func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrProfileNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Profile not found",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
