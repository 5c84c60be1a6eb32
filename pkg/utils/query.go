package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseInt returns def for empty, malformed or non-positive input.
func ParseInt(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// ParseBoolPtr returns nil when the query value is absent or not a bool.
func ParseBoolPtr(value string) *bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &b
}

// QueryStringPtr returns a trimmed query value or nil.
func QueryStringPtr(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}
