package llm

import (
	"strings"
)

// ProfileKind tags the request/response shape used for a call
type ProfileKind string

const (
	ProfileCommitMessage   ProfileKind = "commit_message"
	ProfileDocumentSummary ProfileKind = "document_summary"
)

// Profile captures how one kind of call differs: where it is posted
// and how the candidate's content becomes the result
type Profile interface {
	Kind() ProfileKind
	// Endpoint returns the URL the request is posted to
	Endpoint(baseURL string) string
	// Extract turns the first candidate's content into the result
	Extract(content string) (string, error)
}

var (
	_ Profile = CommitMessageProfile{}
	_ Profile = DocumentSummaryProfile{}
)

// CommitMessageProfile posts to the chat completions path and reduces the reply to a single line
type CommitMessageProfile struct{}

func (CommitMessageProfile) Kind() ProfileKind {
	return ProfileCommitMessage
}

func (CommitMessageProfile) Endpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/chat/completions"
}

func (CommitMessageProfile) Extract(content string) (string, error) {
	return SanitizeCommitMessage(content)
}

// DocumentSummaryProfile posts to the configured URL as is and keeps the reply unmodified
type DocumentSummaryProfile struct{}

func (DocumentSummaryProfile) Kind() ProfileKind {
	return ProfileDocumentSummary
}

func (DocumentSummaryProfile) Endpoint(baseURL string) string {
	return baseURL
}

func (DocumentSummaryProfile) Extract(content string) (string, error) {
	return content, nil
}
