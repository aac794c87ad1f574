package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationRequest(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/mortuary/v1/occupancy/beds", nil)
		pagination := BuildPaginationRequest(req)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
		assert.Equal(t, "", pagination.Search)
	})

	t.Run("Explicit Values", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/mortuary/v1/occupancy/beds?page=3&pageSize=25&search=%20freezer%20", nil)
		pagination := BuildPaginationRequest(req)
		assert.Equal(t, 3, pagination.Page)
		assert.Equal(t, 25, pagination.PageSize)
		assert.Equal(t, "freezer", pagination.Search, "search term should be trimmed")
	})

	t.Run("Invalid Values Fall Back", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/mortuary/v1/occupancy/beds?page=-1&pageSize=abc", nil)
		pagination := BuildPaginationRequest(req)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
	})

	t.Run("Page Size Capped", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/mortuary/v1/occupancy/beds?pageSize=5000", nil)
		pagination := BuildPaginationRequest(req)
		assert.Equal(t, 100, pagination.PageSize, "page size should be capped at the maximum")
	})
}

func TestPageBounds(t *testing.T) {
	t.Run("Middle Page", func(t *testing.T) {
		start, end := PageBounds(25, 2, 10)
		assert.Equal(t, 10, start)
		assert.Equal(t, 20, end)
	})

	t.Run("Last Partial Page", func(t *testing.T) {
		start, end := PageBounds(25, 3, 10)
		assert.Equal(t, 20, start)
		assert.Equal(t, 25, end)
	})

	t.Run("Page Beyond Total", func(t *testing.T) {
		start, end := PageBounds(25, 9, 10)
		assert.Equal(t, 25, start)
		assert.Equal(t, 25, end, "a page past the end should yield an empty window")
	})

	t.Run("Empty Total", func(t *testing.T) {
		start, end := PageBounds(0, 1, 10)
		assert.Equal(t, 0, start)
		assert.Equal(t, 0, end)
	})
}
