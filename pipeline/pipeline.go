package pipeline

import (
	"context"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/confirm"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/llm"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"github.com/sashabaranov/go-openai"
)

// GitClient is the subset of git operations the commit pipeline needs
type GitClient interface {
	CheckRepository() error
	StagedDiff() (string, error)
	Commit(message string) (string, error)
}

// Completer sends a chat request and returns the extracted result
type Completer interface {
	Complete(ctx context.Context, profile llm.Profile, baseURL string, req openai.ChatCompletionRequest) (string, error)
}

// CommitResult describes how a commit pipeline run ended
type CommitResult struct {
	// Draft is the message proposed by the model
	Draft string
	// Message is the confirmed message, empty when nothing was committed
	Message string
	// Output is git's output for the created commit
	Output string
	// Cancelled is set when the user rejected the draft
	Cancelled bool
}

// Commit drafts a commit message for the staged changes, lets the user confirm it and commits
type Commit struct {
	Git       GitClient
	LLM       Completer
	Confirmer confirm.Confirmer
	Settings  common.Settings
	// DryRun stops after drafting, without asking or committing
	DryRun bool
}

func (p *Commit) Run(ctx context.Context) (CommitResult, error) {
	if err := p.Git.CheckRepository(); err != nil {
		return CommitResult{}, err
	}

	diff, err := p.Git.StagedDiff()
	if err != nil {
		return CommitResult{}, err
	}

	req, err := llm.BuildCommitRequest(p.Settings, diff)
	if err != nil {
		return CommitResult{}, err
	}

	draft, err := p.LLM.Complete(ctx, llm.CommitMessageProfile{}, p.Settings.BaseURL, req)
	if err != nil {
		return CommitResult{}, err
	}
	logger.Infof("Generated commit message: %s", draft)

	result := CommitResult{Draft: draft}
	if p.DryRun {
		return result, nil
	}

	message, err := p.Confirmer.ConfirmOrEdit(draft)
	if common.IsKind(err, common.UserCancelled) {
		logger.Info("Commit cancelled by the user")
		result.Cancelled = true
		return result, nil
	}
	if err != nil {
		return result, err
	}

	output, err := p.Git.Commit(message)
	if err != nil {
		return result, err
	}

	result.Message = message
	result.Output = output
	return result, nil
}

// Summary asks the model for one narrative summary of a list of documents.
// The request goes to the configured base URL as is, with no path appended.
type Summary struct {
	LLM      Completer
	Settings common.Settings
}

func (p *Summary) Run(ctx context.Context, documents []string) (string, error) {
	req, err := llm.BuildSummaryRequest(p.Settings, documents)
	if err != nil {
		return "", err
	}

	return p.LLM.Complete(ctx, llm.DocumentSummaryProfile{}, p.Settings.BaseURL, req)
}
