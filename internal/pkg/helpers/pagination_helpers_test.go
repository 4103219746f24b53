package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{name: "defaults", query: "", wantPage: 1, wantSize: 10},
		{name: "explicit values", query: "page=3&pageSize=25", wantPage: 3, wantSize: 25},
		{name: "zero page", query: "page=0", wantPage: 1, wantSize: 10},
		{name: "negative page", query: "page=-2", wantPage: 1, wantSize: 10},
		{name: "oversized page size", query: "pageSize=500", wantPage: 1, wantSize: 10},
		{name: "garbage values", query: "page=abc&pageSize=xyz", wantPage: 1, wantSize: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := ParsePagination(testContextWithQuery(tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(48, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(48), info.TotalItems)
	assert.Equal(t, 5, info.TotalPages)

	empty := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
}
