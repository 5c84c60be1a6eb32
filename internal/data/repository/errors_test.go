package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	f := newFilter("deleted_at IS NULL")
	f.add("category = ?", "music")
	f.add("(name ILIKE ? OR bio ILIKE ?)", "%ad%")

	assert.Equal(t, " WHERE deleted_at IS NULL AND category = $1 AND (name ILIKE $2 OR bio ILIKE $2)", f.where())

	suffix, args := f.page(10, 20)
	assert.Equal(t, " LIMIT $3 OFFSET $4", suffix)
	assert.Equal(t, []any{"music", "%ad%", 10, 20}, args)
	assert.Len(t, f.args, 2)
}

func TestFilter_Empty(t *testing.T) {
	f := newFilter()
	assert.Equal(t, "", f.where())
	suffix, args := f.page(5, 0)
	assert.Equal(t, " LIMIT $1 OFFSET $2", suffix)
	assert.Equal(t, []any{5, 0}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestIsInvalidValue(t *testing.T) {
	for _, code := range []string{"23514", "22003", "22001"} {
		err := fmt.Errorf("create deposit: %w", &pgconn.PgError{Code: code})
		assert.True(t, IsInvalidValue(err), code)
	}
	assert.False(t, IsInvalidValue(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsInvalidValue(errors.New("boom")))
}
