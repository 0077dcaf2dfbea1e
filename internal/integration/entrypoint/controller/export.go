package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/budget-pilot/backend/internal/application/usecase/export"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/dto"
	"github.com/budget-pilot/backend/internal/integration/entrypoint/middleware"
)

// ExportController handles data export endpoints.
type ExportController struct {
	exportUseCase *export.UseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.UseCase) *ExportController {
	return &ExportController{
		exportUseCase: exportUseCase,
	}
}

// Export handles POST /exports requests. The response body is the generated
// file, served as an attachment.
func (c *ExportController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidExportRange),
		})
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.Input{
		UserID:     userID,
		StartMonth: req.StartMonth,
		StartYear:  req.StartYear,
		EndMonth:   req.EndMonth,
		EndYear:    req.EndYear,
		Type:       export.Type(req.Type),
		Format:     export.Format(req.Format),
	})
	if err != nil {
		c.handleExportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Header("Content-Length", strconv.Itoa(len(output.Data)))
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// handleExportError handles export errors and returns appropriate HTTP responses.
func (c *ExportController) handleExportError(ctx *gin.Context, err error) {
	var exportErr *domainerror.ExportError
	if errors.As(err, &exportErr) {
		statusCode := c.getStatusCodeForExportError(exportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: exportErr.Message,
			Code:  string(exportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExportError maps export error codes to HTTP status codes.
func (c *ExportController) getStatusCodeForExportError(code domainerror.ExportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidExportRange,
		domainerror.ErrCodeInvalidExportType,
		domainerror.ErrCodeInvalidExportFormat:
		return http.StatusBadRequest
	case domainerror.ErrCodeNoExportData:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
