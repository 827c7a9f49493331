package cmd

import (
	"fmt"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/confirm"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/git"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/llm"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/pipeline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Draft a commit message for the staged changes and commit",
	Long: `Send the staged diff to the LLM, show the drafted commit message for review
and create the commit once it is confirmed. Press ESC to cancel without committing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Running AI commit...")

		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		llmClient, err := llm.NewFromSettings(settings)
		if err != nil {
			return err
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")

		p := &pipeline.Commit{
			Git:       git.NewClient(git.NewDefaultRunner(""), settings.Exclude...),
			LLM:       llmClient,
			Confirmer: confirm.NewTerminal(),
			Settings:  settings,
			DryRun:    dryRun,
		}

		result, err := p.Run(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case dryRun:
			fmt.Fprintln(out, result.Draft)
		case result.Cancelled:
			color.New(color.FgYellow).Fprintln(out, "Commit cancelled, nothing was committed.")
		default:
			color.New(color.FgGreen).Fprintln(out, result.Output)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)

	addLLMFlags(commitCmd)
	commitCmd.Flags().Bool("dry-run", false, "Print the drafted message without asking for confirmation or committing")
}
