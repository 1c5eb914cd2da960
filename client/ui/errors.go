package ui

import "fmt"

// ActionableError carries a message that is safe to show to the player.
type ActionableError struct {
	Message string
}

func NewActionableError(format string, args ...interface{}) *ActionableError {
	return &ActionableError{Message: fmt.Sprintf(format, args...)}
}

func (e *ActionableError) Error() string {
	return e.Message
}
