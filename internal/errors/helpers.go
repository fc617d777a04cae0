package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsPrerequisiteNotMet checks for a blocked quest completion
func IsPrerequisiteNotMet(err error) bool {
	return GetCode(err) == CodePrerequisiteNotMet
}

// IsInvalidCardUse checks for a rejected card
func IsInvalidCardUse(err error) bool {
	return GetCode(err) == CodeInvalidCardUse
}

// IsNoLivingTarget checks for an attack with nobody to hit
func IsNoLivingTarget(err error) bool {
	return GetCode(err) == CodeNoLivingTarget
}

// IsStoryChoiceRequired checks for progression blocked on a choice
func IsStoryChoiceRequired(err error) bool {
	return GetCode(err) == CodeStoryChoiceRequired
}

// IsGameEnded checks for an intent rejected after the story ended
func IsGameEnded(err error) bool {
	return GetCode(err) == CodeGameEnded
}

// IsSuspended checks for an intent rejected during a timed continuation
func IsSuspended(err error) bool {
	return GetCode(err) == CodeSuspended
}
