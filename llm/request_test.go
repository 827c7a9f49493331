package llm

import (
	"encoding/json"
	"testing"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
	"github.com/sashabaranov/go-openai"
)

func testSettings() common.Settings {
	settings := common.WithDefaultSettings()
	settings.APIKey = "sk-test"
	settings.Model = "gpt-test"
	settings.MaxTokens = 100
	settings.Prompts.System = "You write commit messages."
	settings.Prompts.UserTemplate = "Diff:\n{}"
	settings.Prompts.Slides = "Summarize the slides."
	return settings
}

func TestBuildCommitRequest(t *testing.T) {
	req, err := BuildCommitRequest(testSettings(), "+ added logging\n- removed debug print")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if req.Model != "gpt-test" {
		t.Errorf("Expected model gpt-test, got %s", req.Model)
	}

	if req.MaxTokens != 100 {
		t.Errorf("Expected max tokens 100, got %d", req.MaxTokens)
	}

	if len(req.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(req.Messages))
	}

	if req.Messages[0].Role != openai.ChatMessageRoleSystem || req.Messages[0].Content != "You write commit messages." {
		t.Errorf("Unexpected system message: %+v", req.Messages[0])
	}

	if req.Messages[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("Expected user role, got %s", req.Messages[1].Role)
	}

	expected := "Diff:\n+ added logging\n- removed debug print"
	if req.Messages[1].Content != expected {
		t.Errorf("Expected %q, got %q", expected, req.Messages[1].Content)
	}
}

func TestBuildCommitRequestWireFormat(t *testing.T) {
	req, err := BuildCommitRequest(testSettings(), "+ x")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	var body struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("Failed to unmarshal request: %v", err)
	}

	if body.Model != "gpt-test" || body.MaxTokens != 100 || len(body.Messages) != 2 {
		t.Errorf("Unexpected wire body: %s", data)
	}
}

func TestBuildCommitRequestDoesNotTruncate(t *testing.T) {
	settings := testSettings()
	settings.MaxTokens = 1

	diff := make([]byte, 100000)
	for i := range diff {
		diff[i] = 'a'
	}

	req, err := BuildCommitRequest(settings, string(diff))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(req.Messages[1].Content) != len("Diff:\n")+len(diff) {
		t.Errorf("Expected the full diff to be sent, got %d bytes", len(req.Messages[1].Content))
	}
}

func TestBuildCommitRequestFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *common.Settings)
		diff   string
	}{
		{"empty model", func(s *common.Settings) { s.Model = "" }, "+ x"},
		{"zero max tokens", func(s *common.Settings) { s.MaxTokens = 0 }, "+ x"},
		{"invalid utf-8 diff", func(s *common.Settings) {}, "+ \xff\xfe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			tt.mutate(&settings)

			_, err := BuildCommitRequest(settings, tt.diff)
			if !common.IsKind(err, common.RequestConstructionFailed) {
				t.Errorf("Expected kind %s, got %v", common.RequestConstructionFailed, err)
			}
		})
	}
}

func TestBuildSummaryRequestKeepsOrder(t *testing.T) {
	documents := []string{"Slide 1: intro", "Slide 2: results", "Slide 3: next steps"}

	req, err := BuildSummaryRequest(testSettings(), documents)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(req.Messages) != len(documents)+1 {
		t.Fatalf("Expected %d messages, got %d", len(documents)+1, len(req.Messages))
	}

	if req.Messages[0].Role != openai.ChatMessageRoleSystem || req.Messages[0].Content != "Summarize the slides." {
		t.Errorf("Unexpected system message: %+v", req.Messages[0])
	}

	for i, document := range documents {
		message := req.Messages[i+1]
		if message.Role != openai.ChatMessageRoleUser {
			t.Errorf("Expected user role for document %d, got %s", i, message.Role)
		}
		if message.Content != document {
			t.Errorf("Expected document %d to be %q, got %q", i, document, message.Content)
		}
	}

	if req.Model != "gpt-test" || req.MaxTokens != 100 {
		t.Errorf("Expected model and max tokens from settings, got %s/%d", req.Model, req.MaxTokens)
	}
}

func TestBuildSummaryRequestNoDocuments(t *testing.T) {
	_, err := BuildSummaryRequest(testSettings(), nil)
	if !common.IsKind(err, common.RequestConstructionFailed) {
		t.Errorf("Expected kind %s, got %v", common.RequestConstructionFailed, err)
	}
}

func TestBuildSummaryRequestEmptyDocument(t *testing.T) {
	tests := []struct {
		name      string
		documents []string
		message   string
	}{
		{name: "empty", documents: []string{"slide one", ""}, message: "document 2 is empty"},
		{name: "whitespace only", documents: []string{" \n\t", "slide two"}, message: "document 1 is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSummaryRequest(testSettings(), tt.documents)
			if !common.IsKind(err, common.RequestConstructionFailed) {
				t.Fatalf("Expected kind %s, got %v", common.RequestConstructionFailed, err)
			}

			if err.Error() != tt.message {
				t.Errorf("Expected %q, got %q", tt.message, err.Error())
			}
		})
	}
}
