package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	page := NewPaginatedResponse([]string{"a", "b"}, 1, 2, 5)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNext)

	last := NewPaginatedResponse([]string{"e"}, 3, 2, 5)
	assert.False(t, last.Pagination.HasNext)

	empty := NewPaginatedResponse[string](nil, 1, 10, 0)
	assert.NotNil(t, empty.Items)
	assert.Zero(t, empty.Pagination.TotalPages)
}
