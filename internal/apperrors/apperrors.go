package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	ErrInvalidRequest = errors.New("invalid request body")
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")

	ErrParentMismatch    = errors.New("subtask does not belong to the specified problem instance")
	ErrIndexOutOfRange   = errors.New("acceptance criterion index out of range")
	ErrCriterionNotFound = errors.New("acceptance criterion not found")
)

type InstanceAlreadyExistsError struct {
	ProblemNum string
	OwnerID    string
}

func (e *InstanceAlreadyExistsError) Error() string {
	return "problem instance already exists for this user and problem"
}
func (e *InstanceAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

type StepAlreadyExistsError struct{ StepNum int }

func (e *StepAlreadyExistsError) Error() string {
	return fmt.Sprintf("subtask for step %d already exists", e.StepNum)
}
func (e *StepAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

type CollaboratorAlreadyExistsError struct{ UserID string }

func (e *CollaboratorAlreadyExistsError) Error() string {
	return "collaborator already exists in this problem instance"
}
func (e *CollaboratorAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

type ProblemAlreadyExistsError struct{ ProblemNum string }

func (e *ProblemAlreadyExistsError) Error() string {
	return fmt.Sprintf("problem number '%s' already exists", e.ProblemNum)
}
func (e *ProblemAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// ParentNotFoundError reports a subtask whose problem instance is missing.
type ParentNotFoundError struct{ InstanceID string }

func (e *ParentNotFoundError) Error() string {
	return "problem instance not found"
}
func (e *ParentNotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound builds an ErrNotFound wrapper naming what was missing.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
