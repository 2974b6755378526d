// Package services contains stateless domain services for the todo bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"

	"github.com/ghuser/todolists/services/todo/domain/models"
)

// ValidateText enforces the rules shared by list names and item descriptions
// beyond the structural constraints of their constructors. PostgreSQL text
// columns cannot hold NUL, so it is rejected here rather than by the driver.
func ValidateText(field, s string) error {
	if strings.ContainsRune(s, 0) {
		return fmt.Errorf("%s must not contain NUL characters", field)
	}
	return nil
}

// ValidateListForCreation checks an unsaved List before it is persisted.
func ValidateListForCreation(list *models.List) error {
	if list == nil {
		return fmt.Errorf("list cannot be nil")
	}
	if list.ID != 0 {
		return fmt.Errorf("id is assigned by the store")
	}
	return ValidateText("list name", list.Name.String())
}

// ValidateItemForCreation checks an unsaved Item before it is persisted.
// Whether ListID references an existing list is decided by the store.
func ValidateItemForCreation(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}
	if item.ID != 0 {
		return fmt.Errorf("id is assigned by the store")
	}
	if item.ListID <= 0 {
		return fmt.Errorf("list_id must be positive")
	}
	if item.Completed {
		return fmt.Errorf("new items start not completed")
	}
	return ValidateText("item description", item.Description.String())
}
