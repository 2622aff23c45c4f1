package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/icpctrainer/trainerlaunch/internal/config"
)

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true)
	promptErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// inputModel is a bubbletea model for a single text prompt with validation.
// An empty submission accepts the placeholder default.
type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if val != "" && m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.errMsg = ""
	return m, cmd
}

func (m inputModel) View() string {
	s := promptTitleStyle.Render(m.title) + "\n" + m.textInput.View()
	if m.errMsg != "" {
		s += "\n" + promptErrStyle.Render(m.errMsg)
	}
	return s + "\n"
}

// promptString asks one question and returns the entered value, or the
// default when the user submits an empty line.
func promptString(title, defaultValue string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.Focus()

	m := inputModel{textInput: ti, title: title, validate: validate}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	result := final.(inputModel)
	if result.aborted {
		return "", fmt.Errorf("aborted")
	}
	if v := result.textInput.Value(); v != "" {
		return v, nil
	}
	return defaultValue, nil
}

// interactiveConfig walks through the launch.yaml fields one prompt at a
// time, validating as it goes.
func interactiveConfig() (*config.Launch, error) {
	cfg := config.Default()

	module, err := promptString("Target module", config.DefaultModule, func(v string) error {
		probe := *cfg
		probe.Module = v
		return config.Validate(&probe)
	})
	if err != nil {
		return nil, err
	}
	cfg.Module = module

	interpreter, err := promptString("Base interpreter", config.DefaultInterpreter, nil)
	if err != nil {
		return nil, err
	}
	cfg.Interpreter = interpreter

	venv, err := promptString("Virtual environment directory", config.DefaultVenvDir, func(v string) error {
		probe := *cfg
		probe.VenvDir = v
		return config.Validate(&probe)
	})
	if err != nil {
		return nil, err
	}
	cfg.VenvDir = venv

	src, err := promptString("Source directory", config.DefaultSrcDir, func(v string) error {
		probe := *cfg
		probe.SrcDir = v
		return config.Validate(&probe)
	})
	if err != nil {
		return nil, err
	}
	cfg.SrcDir = src

	return cfg, nil
}
