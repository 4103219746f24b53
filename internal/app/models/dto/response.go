package dto

// APIResponse is the standard response envelope for API endpoints
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo describes the page window of a paginated listing
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"48"`
	TotalPages  int   `json:"totalPages" example:"5"`
}
