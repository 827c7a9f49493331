package prompt

import (
	"strings"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
)

const defaultDiffTemplate = `Write a commit message for the following staged changes.

[Diff Start]
` + common.TemplateMarker + `
[Diff End]`

// GetDiffPrompt interpolates the full diff into the configured user template
func GetDiffPrompt(settings common.Settings, diffContent string) string {
	template := defaultDiffTemplate
	if settings.Prompts.UserTemplate != "" {
		template = settings.Prompts.UserTemplate
	}

	return strings.ReplaceAll(template, common.TemplateMarker, diffContent)
}
