package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1
)

// ParsePagination reads 1-based page and pageSize query parameters,
// falling back to defaults on absent or malformed values.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page is the 1-based page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(size)))
	if totalPages < 1 {
		totalPages = 1
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		PageSize:    size,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}
