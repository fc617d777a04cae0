package errors

// Code represents an error code
type Code string

// Generic error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Game rule codes. These are surfaced to the player and never leave
// partially applied state behind.
const (
	CodePrerequisiteNotMet  Code = "PREREQUISITE_NOT_MET"
	CodeInvalidCardUse      Code = "INVALID_CARD_USE"
	CodeNoLivingTarget      Code = "NO_LIVING_TARGET"
	CodeStoryChoiceRequired Code = "STORY_CHOICE_REQUIRED"
	CodeGameEnded           Code = "GAME_ENDED"
	CodeSuspended           Code = "SUSPENDED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsGameRule reports whether the code describes a rejected player intent
// rather than an infrastructure failure.
func (c Code) IsGameRule() bool {
	switch c {
	case CodePrerequisiteNotMet,
		CodeInvalidCardUse,
		CodeNoLivingTarget,
		CodeStoryChoiceRequired,
		CodeGameEnded,
		CodeSuspended:
		return true
	default:
		return false
	}
}
