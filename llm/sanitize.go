package llm

import (
	"regexp"
	"strings"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
)

var (
	backtickWrapped = regexp.MustCompile("^`\\s*(.+?)\\s*`$")
	codeFence       = regexp.MustCompile("^```[\\w+.-]*$")
)

// SanitizeCommitMessage keeps the first non-blank line of the model's reply that is not a code fence marker.
// Fence lines such as ``` or ```text are skipped rather than returned. A line
// wrapped in backticks is reduced to the text between them and everything
// after the kept line is discarded.
func SanitizeCommitMessage(content string) (string, error) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || codeFence.MatchString(line) {
			continue
		}

		if matches := backtickWrapped.FindStringSubmatch(line); matches != nil {
			inner := strings.TrimSpace(matches[1])
			if inner == "" {
				continue
			}
			return inner, nil
		}

		return line, nil
	}

	return "", common.NewError(common.PostProcessingFailed, "failed to post-process the generated commit message")
}
