package models

// Item is a single task. It belongs to exactly one List for its whole lifetime.
type Item struct {
	ID          int64 // assigned by the store on insert
	ListID      int64
	Description ItemDescription
	Completed   bool
}

// NewItem constructs an unsaved, not yet completed Item in the given list.
func NewItem(listID int64, description ItemDescription) *Item {
	return &Item{
		ListID:      listID,
		Description: description,
		Completed:   false,
	}
}
