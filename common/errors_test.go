package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("fatal: not a git repository")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"kind only", NewError(NoCandidates, ""), "no candidates"},
		{"message only", NewError(NoStagedChanges, "there are no staged changes to commit"), "there are no staged changes to commit"},
		{"cause only", WrapError(CommandFailed, "", cause), "fatal: not a git repository"},
		{"message and cause", WrapError(NotARepository, "the current directory is not a Git repository", cause),
			"the current directory is not a Git repository: fatal: not a git repository"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestKindOfWrappedError(t *testing.T) {
	inner := NewError(TransportFailed, "failed to send the request to the API provider")
	wrapped := fmt.Errorf("generating commit message: %w", inner)

	if KindOf(wrapped) != TransportFailed {
		t.Errorf("Expected kind %s, got %s", TransportFailed, KindOf(wrapped))
	}

	if !IsKind(wrapped, TransportFailed) {
		t.Error("Expected IsKind to match the wrapped kind")
	}

	if IsKind(wrapped, NoCandidates) {
		t.Error("Expected IsKind not to match a different kind")
	}
}

func TestKindOfOutermostError(t *testing.T) {
	err := WrapError(NotARepository, "the current directory is not a Git repository",
		NewError(CommandFailed, "fatal: not a git repository"))

	if KindOf(err) != NotARepository {
		t.Errorf("Expected outermost kind %s, got %s", NotARepository, KindOf(err))
	}

	var inner *Error
	if !errors.As(errors.Unwrap(err), &inner) || inner.Kind != CommandFailed {
		t.Error("Expected the cause to keep its own kind")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if KindOf(errors.New("boom")) != KindUnknown {
		t.Error("Expected plain errors to have the unknown kind")
	}

	if IsKind(nil, KindUnknown) {
		t.Error("Expected nil error not to match any kind")
	}
}
