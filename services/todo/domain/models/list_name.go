package models

import (
	"fmt"
	"strings"
)

// ListName is a value object representing a valid list name.
// It is kept exactly as given; only empty or whitespace-only text is rejected.
type ListName string

// NewListName constructs a valid ListName or returns an error if constraints are violated.
func NewListName(s string) (ListName, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("list name must not be empty")
	}
	return ListName(s), nil
}

// String returns the underlying string value.
func (n ListName) String() string {
	return string(n)
}
