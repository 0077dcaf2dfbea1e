package dto

// ExportRequest represents the request body for data exports.
type ExportRequest struct {
	StartMonth int    `json:"start_month" binding:"required,min=1,max=12"`
	StartYear  int    `json:"start_year" binding:"required"`
	EndMonth   int    `json:"end_month" binding:"required,min=1,max=12"`
	EndYear    int    `json:"end_year" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=monthly-summary recurring one-time income full"`
	Format     string `json:"format" binding:"required,oneof=csv xlsx"`
}
