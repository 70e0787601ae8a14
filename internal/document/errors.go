package document

import "fmt"

// NotFoundError indicates a list item id that is not present in the document.
type NotFoundError struct {
	Section string
	ID      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s entry not found: %s", e.Section, e.ID)
}

// UnknownFieldError indicates a field name outside the wire format.
type UnknownFieldError struct {
	Section string
	Field   string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown %s field: %s", e.Section, e.Field)
}
