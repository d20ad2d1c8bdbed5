package services

import "fmt"

// ValidationError rejects a submission before any side effect happens.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// PartialPersistenceError means the order header was saved but its line
// items were not. The created identifiers are carried so the caller can
// surface them for manual reconciliation.
type PartialPersistenceError struct {
	OrderID     string
	OrderNumber string
	Err         error
}

func (e *PartialPersistenceError) Error() string {
	return fmt.Sprintf("order %s created but items failed: %v", e.OrderNumber, e.Err)
}

func (e *PartialPersistenceError) Unwrap() error { return e.Err }
