package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
)

const (
	// Executable is the name of the git binary looked up on PATH
	Executable = "git"
	// LockFilePathspec keeps generated lock files out of the diff sent to the model
	LockFilePathspec = ":!*.lock"
)

// Runner defines an interface for running git commands
type Runner interface {
	Run(name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}

// Ensure DefaultRunner implements Runner interface
var _ Runner = (*DefaultRunner)(nil)

// DefaultRunner implements the Runner interface using exec.Command
type DefaultRunner struct {
	RepoPath string
}

// NewDefaultRunner creates a new instance of DefaultRunner
func NewDefaultRunner(repoPath string) *DefaultRunner {
	return &DefaultRunner{
		RepoPath: repoPath,
	}
}

// Run executes a command and returns its standard output untouched.
// A non-zero exit status surfaces the command's stderr as the error message.
func (r *DefaultRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	if r.RepoPath != "" {
		cmd.Dir = r.RepoPath
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("Running command: %s %s", name, strings.Join(args, " "))

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		var execErr *exec.Error
		switch {
		case errors.As(err, &exitErr):
			logger.Debugf("Command %s exited with status %d", name, exitErr.ExitCode())
			return "", common.NewError(common.CommandFailed, strings.TrimSpace(stderr.String()))
		case errors.As(err, &execErr):
			return "", common.WrapError(common.ToolingUnavailable, fmt.Sprintf("failed to execute %s", name), err)
		default:
			return "", common.WrapError(common.CommandFailed, fmt.Sprintf("failed to execute %s", name), err)
		}
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", common.NewError(common.OutputNotText, fmt.Sprintf("failed to decode output of the %s command", name))
	}

	return stdout.String(), nil
}

// LookPath reports where name is found on PATH
func (r *DefaultRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Client provides the git operations needed to draft and create a commit
type Client struct {
	runner  Runner
	exclude []string
}

// NewClient creates a new Git client.
// exclude lists extra pathspec globs kept out of the staged diff.
func NewClient(runner Runner, exclude ...string) *Client {
	return &Client{
		runner:  runner,
		exclude: exclude,
	}
}

// CheckRepository verifies that git is installed and the working directory is inside a work tree
func (c *Client) CheckRepository() error {
	if _, err := c.runner.LookPath(Executable); err != nil {
		return common.WrapError(common.ToolingUnavailable, "git may not be installed", err)
	}

	output, err := c.runner.Run(Executable, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		if common.IsKind(err, common.ToolingUnavailable) {
			return err
		}
		return common.WrapError(common.NotARepository, "the current directory is not a Git repository", err)
	}

	if strings.TrimSpace(output) != "true" {
		return common.NewError(common.NotARepository, "the current directory is not inside a Git work tree")
	}

	return nil
}

// StagedDiff returns the staged changes without lock files, trimmed of surrounding whitespace
func (c *Client) StagedDiff() (string, error) {
	params := []string{
		"--no-pager",
		"diff",
		"--staged",
		"--minimal",
		"--no-color",
		"--no-ext-diff",
		"--",
		LockFilePathspec,
	}
	for _, glob := range c.exclude {
		params = append(params, ":!"+glob)
	}

	output, err := c.runner.Run(Executable, params...)
	if err != nil {
		return "", err
	}

	diff := strings.TrimSpace(output)
	if diff == "" {
		return "", common.NewError(common.NoStagedChanges, "there are no staged changes to commit")
	}

	logger.Debugf("Collected staged diff of %d bytes", len(diff))

	return diff, nil
}

// Commit creates a commit with message and returns git's trimmed output
func (c *Client) Commit(message string) (string, error) {
	output, err := c.runner.Run(Executable, "commit", "-m", message)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(output), nil
}
