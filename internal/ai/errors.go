package ai

import "fmt"

// EmptyInputError indicates an enhancement call with nothing to enhance.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "add a description or at least one achievement first"
}

// MissingFieldError indicates a required input left blank; the call never
// reached the network.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field is blank: %s", e.Field)
}

// NotPersistedError indicates an operation that needs a saved resume was
// invoked on an unsaved one.
type NotPersistedError struct{}

func (e *NotPersistedError) Error() string {
	return "save the resume before running this operation"
}

// EntitlementError indicates a premium feature invoked without entitlement.
type EntitlementError struct {
	Feature string
}

func (e *EntitlementError) Error() string {
	return fmt.Sprintf("premium subscription required for %s", e.Feature)
}
