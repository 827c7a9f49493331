package confirm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
)

const (
	Title          = "Your generated commit message:"
	HelpMessage    = "Press Enter to create a new commit with the current message or ESC to cancel"
	RequiredReason = "a non-empty commit message is required"
)

// Confirmer lets the user accept, edit or reject a drafted commit message
type Confirmer interface {
	// ConfirmOrEdit blocks until the user submits a non-empty message or cancels.
	// Cancelling returns an error of kind common.UserCancelled.
	ConfirmOrEdit(draft string) (string, error)
}

// Ensure Terminal implements Confirmer interface
var _ Confirmer = (*Terminal)(nil)

// Terminal is a Confirmer that edits the draft in an interactive terminal prompt
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal creates a Terminal confirmer on stdin/stdout
func NewTerminal() *Terminal {
	return &Terminal{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

func (t *Terminal) ConfirmOrEdit(draft string) (string, error) {
	program := tea.NewProgram(newModel(draft), tea.WithInput(t.In), tea.WithOutput(t.Out))

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run the commit message prompt: %w", err)
	}

	return final.(model).result()
}

// model is the bubbletea model behind the prompt
type model struct {
	input     textinput.Model
	invalid   bool
	submitted bool
	cancelled bool
}

func newModel(draft string) model {
	input := textinput.New()
	input.Prompt = "> "
	input.SetValue(draft)
	input.CursorEnd()
	input.Focus()

	return model{input: input}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if strings.TrimSpace(m.input.Value()) == "" {
				m.invalid = true
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.invalid && strings.TrimSpace(m.input.Value()) != "" {
		m.invalid = false
	}
	return m, cmd
}

func (m model) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.Bold).Sprint(Title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.invalid {
		b.WriteString(color.RedString("# %s", RequiredReason))
		b.WriteString("\n")
	}
	b.WriteString(color.New(color.Faint).Sprint(HelpMessage))
	b.WriteString("\n")
	return b.String()
}

// result turns the final state into the confirmed message or a cancellation
func (m model) result() (string, error) {
	if !m.submitted {
		return "", common.NewError(common.UserCancelled, "commit cancelled")
	}
	return strings.TrimSpace(m.input.Value()), nil
}
