package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicate           = errors.New("duplicate record")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCapacityExceeded    = errors.New("capacity exceeded")
	ErrNotFound            = errors.New("record not found")
	ErrNotPending          = errors.New("record is no longer pending")
)

const (
	uniqueViolation   = "23505"
	checkViolation    = "23514"
	numericOutOfRange = "22003"
	stringTooLong     = "22001"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsInvalidValue reports whether Postgres rejected a value through a CHECK
// constraint, a numeric precision overflow or a column width limit.
func IsInvalidValue(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case checkViolation, numericOutOfRange, stringTooLong:
		return true
	}
	return false
}

// filter accumulates optional WHERE conditions with numbered placeholders.
type filter struct {
	clauses []string
	args    []any
}

func newFilter(base ...string) *filter {
	return &filter{clauses: base}
}

// add appends cond; every "?" in it refers to arg.
func (f *filter) add(cond string, arg any) {
	f.args = append(f.args, arg)
	f.clauses = append(f.clauses, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(f.args))))
}

func (f *filter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// page returns the LIMIT/OFFSET suffix and the full argument list.
func (f *filter) page(limit, offset int) (string, []any) {
	n := len(f.args)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), append(append([]any{}, f.args...), limit, offset)
}
