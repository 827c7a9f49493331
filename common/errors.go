package common

import (
	"errors"
)

// ErrorKind classifies a failure so callers can branch on it instead of on message text
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// ToolingUnavailable means the git executable cannot be found
	ToolingUnavailable
	// NotARepository means the working directory is not inside a git work tree
	NotARepository
	// CommandFailed means an external command exited with a non-zero status
	CommandFailed
	// OutputNotText means an external command produced output that is not valid UTF-8
	OutputNotText
	// NoStagedChanges means the staged diff is empty
	NoStagedChanges
	// RequestConstructionFailed means the chat request payload could not be built
	RequestConstructionFailed
	// TransportFailed means the request could not be sent or the provider rejected it
	TransportFailed
	// NoCandidates means the response had no usable candidate
	NoCandidates
	// PostProcessingFailed means no commit message line could be extracted
	PostProcessingFailed
	// UserCancelled means the user aborted at the confirmation step
	UserCancelled
	// InvalidConfiguration means the loaded settings are unusable
	InvalidConfiguration
)

var kindNames = map[ErrorKind]string{
	KindUnknown:               "unknown",
	ToolingUnavailable:        "tooling unavailable",
	NotARepository:            "not a repository",
	CommandFailed:             "command failed",
	OutputNotText:             "output not text",
	NoStagedChanges:           "no staged changes",
	RequestConstructionFailed: "request construction failed",
	TransportFailed:           "transport failed",
	NoCandidates:              "no candidates",
	PostProcessingFailed:      "post-processing failed",
	UserCancelled:             "user cancelled",
	InvalidConfiguration:      "invalid configuration",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is a failure tagged with its kind and an optional underlying cause
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// NewError creates an Error without a cause
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an Error that carries cause
func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Error implements the error interface as a single human-readable line
func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Cause == nil:
		return e.Kind.String()
	case e.Cause == nil:
		return e.Message
	case e.Message == "":
		return e.Cause.Error()
	default:
		return e.Message + ": " + e.Cause.Error()
	}
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of the outermost *Error in err's chain
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether the outermost *Error in err's chain has the given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
