package prompt

import (
	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
)

const defaultSlidesPrompt = `You will receive the text of a presentation, one message per slide, in the order the slides appear.
Write a single narrative summary of the whole presentation.
- Keep the order of the ideas as presented.
- Focus on the main points and conclusions, skip slide numbers and decoration.
- Reply with the summary only.`

// GetSlidesPrompt returns the system prompt for document summaries
func GetSlidesPrompt(settings common.Settings) string {
	if settings.Prompts.Slides != "" {
		return settings.Prompts.Slides
	}
	return defaultSlidesPrompt
}
