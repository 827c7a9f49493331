package cmd

import (
	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "ai-commit",
	Short: "AI Commit - draft commit messages from staged changes using AI",
	Long: `AI Commit drafts a commit message from the staged changes of a Git working tree
using an OpenAI compatible chat endpoint, lets you edit it and creates the commit.
It can also summarize a list of documents, such as text extracted from slides.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

// loadSettings reads the configuration and applies the LLM flags of cmd on top
func loadSettings(cmd *cobra.Command) (common.Settings, error) {
	settings, err := common.LoadSettings(configPath)
	if err != nil {
		return settings, err
	}

	if cmd.Flags().Changed("model") {
		settings.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("max-tokens") {
		settings.MaxTokens, _ = cmd.Flags().GetInt("max-tokens")
	}

	logger.Debugf("Using settings: model=%s, max tokens=%d, base URL=%s, source=%q",
		settings.Model, settings.MaxTokens, settings.BaseURL, settings.Source)

	return settings, nil
}

func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("model", "m", common.DefaultModel, "LLM model to use, overrides the configuration file")
	cmd.Flags().Int("max-tokens", common.DefaultMaxTokens, "Maximum number of tokens in the reply, overrides the configuration file")
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.DefaultLevel,
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to a YAML or TOML configuration file (default: .ai-commit.yml in the current directory)")
}
