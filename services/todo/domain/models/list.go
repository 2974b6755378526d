package models

// List is a named container of items. It exclusively owns its Items:
// deleting a List deletes every Item whose ListID matches.
type List struct {
	ID   int64 // assigned by the store on insert
	Name ListName
}

// NewList constructs an unsaved List. The ID stays zero until persisted.
func NewList(name ListName) *List {
	return &List{Name: name}
}

// ListView is the read model behind the list page: every list, the active
// one, and the active list's items in ascending id order.
type ListView struct {
	Lists  []*List
	Active *List
	Items  []*Item
}
