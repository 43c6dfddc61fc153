package reservation

import (
	"fmt"

	"homeclean-booking/internal/pkg/errs"
)

var (
	ErrInvalidDraft     = errs.New("invalid reservation draft")
	ErrStepValidation   = errs.New("step validation failed")
	ErrTerminalStep     = errs.New("confirmation step has no next step")
	ErrNotConfirmStep   = errs.New("reservation can only be submitted from the confirmation step")
	ErrWizardExited     = errs.New("wizard has been exited")
	ErrUnknownOption    = errs.New("unknown service option")
	ErrOptionNotCounted = errs.New("service option is not countable")
	ErrUnknownCandidate = errs.New("manager is not among the looked-up candidates")
)

// ValidationError names the field that blocked an action so the client can
// show it to the user.
type ValidationError struct {
	Step    Step
	Field   string
	Message string
	kind    error
}

func newStepError(step Step, field, msg string) *ValidationError {
	return &ValidationError{Step: step, Field: field, Message: msg, kind: ErrStepValidation}
}

func newDraftError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg, kind: ErrInvalidDraft}
}

func (e *ValidationError) Error() string {
	if e.Step != 0 {
		return fmt.Sprintf("step %d (%s): %s: %s", e.Step, e.Step, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == e.kind
}
