package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/usecase/onetime"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/dto"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/middleware"
)

// OneTimeController handles one-time transaction endpoints.
type OneTimeController struct {
	listUseCase   *onetime.ListOneTimeUseCase
	createUseCase *onetime.CreateOneTimeUseCase
	updateUseCase *onetime.UpdateOneTimeUseCase
	deleteUseCase *onetime.DeleteOneTimeUseCase
}

// NewOneTimeController creates a new one-time transaction controller instance.
func NewOneTimeController(
	listUseCase *onetime.ListOneTimeUseCase,
	createUseCase *onetime.CreateOneTimeUseCase,
	updateUseCase *onetime.UpdateOneTimeUseCase,
	deleteUseCase *onetime.DeleteOneTimeUseCase,
) *OneTimeController {
	return &OneTimeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /one-time-transactions requests. Optional "from" and "to"
// query parameters restrict the result to an inclusive date range; both must
// be provided together for the range to apply.
func (c *OneTimeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := onetime.ListOneTimeInput{
		UserID: userID,
	}

	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := time.Parse(dto.DateLayout, fromStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid from date format, expected YYYY-MM-DD",
			})
			return
		}
		input.From = &from
	}
	if toStr := ctx.Query("to"); toStr != "" {
		to, err := time.Parse(dto.DateLayout, toStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid to date format, expected YYYY-MM-DD",
			})
			return
		}
		input.To = &to
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve one-time transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOneTimeListResponse(output.OneTime))
}

// Create handles POST /one-time-transactions requests.
func (c *OneTimeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateOneTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingOneTimeFields),
		})
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingOneTimeFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), onetime.CreateOneTimeInput{
		UserID:   userID,
		Name:     req.Name,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
	})
	if err != nil {
		c.handleOneTimeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOneTimeResponse(output.OneTime))
}

// Update handles PATCH /one-time-transactions/:id requests.
func (c *OneTimeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	oneTimeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateOneTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingOneTimeFields),
		})
		return
	}

	input := onetime.UpdateOneTimeInput{
		ID:       oneTimeID,
		UserID:   userID,
		Name:     req.Name,
		Amount:   req.Amount,
		Category: req.Category,
	}

	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingOneTimeFields),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOneTimeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOneTimeResponse(output.OneTime))
}

// Delete handles DELETE /one-time-transactions/:id requests.
func (c *OneTimeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	oneTimeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), onetime.DeleteOneTimeInput{
		ID:     oneTimeID,
		UserID: userID,
	}); err != nil {
		c.handleOneTimeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleOneTimeError handles one-time transaction errors and returns
// appropriate HTTP responses.
func (c *OneTimeController) handleOneTimeError(ctx *gin.Context, err error) {
	var oneTimeErr *domainerror.OneTimeError
	if errors.As(err, &oneTimeErr) {
		statusCode := c.getStatusCodeForOneTimeError(oneTimeErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: oneTimeErr.Message,
			Code:  string(oneTimeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForOneTimeError maps one-time error codes to HTTP status codes.
func (c *OneTimeController) getStatusCodeForOneTimeError(code domainerror.OneTimeErrorCode) int {
	switch code {
	case domainerror.ErrCodeOneTimeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidOneTimeAmount,
		domainerror.ErrCodeMissingOneTimeFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
