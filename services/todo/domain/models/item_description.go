package models

import (
	"fmt"
	"strings"
)

// ItemDescription is a value object representing a valid item description.
// It is kept exactly as given; only empty or whitespace-only text is rejected.
type ItemDescription string

// NewItemDescription constructs a valid ItemDescription or returns an error if constraints are violated.
func NewItemDescription(s string) (ItemDescription, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("item description must not be empty")
	}
	return ItemDescription(s), nil
}

// String returns the underlying string value.
func (d ItemDescription) String() string {
	return string(d)
}
