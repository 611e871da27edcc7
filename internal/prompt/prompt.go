// Package prompt asks the operator for confirmations and free-text input.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"
)

var (
	// ErrCancelled is returned when the operator aborts a prompt (ctrl+c / esc)
	ErrCancelled = errors.New("prompt cancelled")
	// ErrNonInteractive is returned when input is needed but no terminal is available
	ErrNonInteractive = errors.New("input required but not running interactively")
	// ErrScriptExhausted is returned by Script when it has no answer left
	ErrScriptExhausted = errors.New("no scripted answer left")
)

// Prompter is the operator oracle used by the orchestrator
type Prompter interface {
	Confirm(title string, defaultYes bool) (bool, error)
	Input(title string) (string, error)
}

// Huh renders prompts as huh forms
type Huh struct {
	in  io.Reader
	out io.Writer
}

// NewHuh creates a huh-backed prompter reading from in and drawing to out
func NewHuh(in io.Reader, out io.Writer) *Huh {
	return &Huh{in: in, out: out}
}

func (h *Huh) runField(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithInput(h.in).
		WithOutput(h.out)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

func (h *Huh) Confirm(title string, defaultYes bool) (bool, error) {
	value := defaultYes
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := h.runField(field); err != nil {
		return false, err
	}
	return value, nil
}

// Input asks for a non-empty line of text
func (h *Huh) Input(title string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Prompt("> ").
		Value(&value).
		Validate(func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("input required")
			}
			return nil
		})
	if err := h.runField(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// AutoConfirm answers every confirmation with Answer and refuses free-text input.
// Used for --yes and non-interactive runs.
type AutoConfirm struct {
	Answer bool
}

func (a AutoConfirm) Confirm(string, bool) (bool, error) {
	return a.Answer, nil
}

func (a AutoConfirm) Input(title string) (string, error) {
	return "", fmt.Errorf("%s: %w", title, ErrNonInteractive)
}

// Refuse fails every prompt. Used when stdin is not a terminal and --yes was not given.
type Refuse struct{}

func (Refuse) Confirm(title string, _ bool) (bool, error) {
	return false, fmt.Errorf("%s: %w", title, ErrNonInteractive)
}

func (Refuse) Input(title string) (string, error) {
	return "", fmt.Errorf("%s: %w", title, ErrNonInteractive)
}

// Script replays queued answers and records every title asked
type Script struct {
	mu       sync.Mutex
	confirms []bool
	inputs   []string
	Titles   []string
}

// NewScript creates a Script with queued confirm answers
func NewScript(confirms ...bool) *Script {
	return &Script{confirms: confirms}
}

// WithInputs queues free-text answers
func (s *Script) WithInputs(inputs ...string) *Script {
	s.inputs = append(s.inputs, inputs...)
	return s
}

func (s *Script) Confirm(title string, _ bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Titles = append(s.Titles, title)
	if len(s.confirms) == 0 {
		return false, fmt.Errorf("confirm %q: %w", title, ErrScriptExhausted)
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func (s *Script) Input(title string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Titles = append(s.Titles, title)
	if len(s.inputs) == 0 {
		return "", fmt.Errorf("input %q: %w", title, ErrScriptExhausted)
	}
	answer := s.inputs[0]
	s.inputs = s.inputs[1:]
	return answer, nil
}

// Asked returns how many prompts were shown
func (s *Script) Asked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Titles)
}

var (
	_ Prompter = (*Huh)(nil)
	_ Prompter = AutoConfirm{}
	_ Prompter = Refuse{}
	_ Prompter = (*Script)(nil)
)
