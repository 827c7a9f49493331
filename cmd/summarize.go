package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/llm"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/pipeline"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [files...]",
	Short: "Summarize a list of documents using AI",
	Long: `Send each file as one document, in the given order, and print a single narrative summary.
Reads one document from stdin when no files are given or the file is "-".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running AI summary...")

		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		documents, err := readDocuments(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		logger.Debugf("Summarizing %d documents", len(documents))

		llmClient, err := llm.NewFromSettings(settings)
		if err != nil {
			return err
		}

		p := &pipeline.Summary{LLM: llmClient, Settings: settings}
		summary, err := p.Run(cmd.Context(), documents)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), summary)
		return nil
	},
}

// readDocuments returns the content of every path in order, "-" reads stdin
func readDocuments(paths []string, stdin io.Reader) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	documents := make([]string, 0, len(paths))
	for _, path := range paths {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", path, err)
		}
		documents = append(documents, string(data))
	}

	return documents, nil
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	addLLMFlags(summarizeCmd)
}
