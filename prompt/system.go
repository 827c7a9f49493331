package prompt

import (
	"fmt"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
)

const defaultCommitSystemPrompt = `You are an assistant that writes git commit messages.
- Read the staged diff and describe the change in a single line.
- Use the imperative mood and keep the line under 72 characters.
- Follow the Conventional Commits format (type(scope): description) when a type fits.
- Reply with the commit message only, without explanations, quotes or code blocks.`

// GetCommitSystemPrompt returns the configured system prompt, or the built-in one
func GetCommitSystemPrompt(settings common.Settings) string {
	basePrompt := defaultCommitSystemPrompt
	if settings.Prompts.System != "" {
		basePrompt = settings.Prompts.System
	}

	if settings.Language != "" && settings.Language != common.DefaultLanguage {
		basePrompt += fmt.Sprintf("\n- Use %s language.", settings.Language)
	}

	return basePrompt
}
