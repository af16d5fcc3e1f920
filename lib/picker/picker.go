// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package picker renders an interactive single-choice list on the
// terminal. Commands use it whenever the user omits a positional
// argument that names a profile, cluster, or merge strategy.
//
// The list runs on stderr so that stdout stays clean for command
// output. When stdin is not a terminal the picker refuses to run
// instead of hanging a script.
package picker

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user dismisses the list without
// choosing.
var ErrCancelled = errors.New("selection cancelled")

// ErrNotInteractive is returned when stdin is not a terminal and no
// selection is possible.
var ErrNotInteractive = errors.New("cannot prompt for a selection: stdin is not a terminal")

var (
	promptStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// keyMap defines the picker's key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c", "q")),
	}
}

// Select prompts the user to choose one of options and returns the
// chosen value. It fails with [ErrCancelled] on dismissal and
// [ErrNotInteractive] when no terminal is attached.
func Select(prompt string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("nothing to choose from")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", ErrNotInteractive
	}

	program := tea.NewProgram(
		newModel(prompt, options),
		tea.WithOutput(os.Stderr),
	)
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("running selection list: %w", err)
	}

	result := final.(model)
	if result.cancelled {
		return "", ErrCancelled
	}
	return result.options[result.cursor], nil
}

// model is the bubbletea model for the selection list.
type model struct {
	prompt    string
	options   []string
	cursor    int
	keys      keyMap
	chosen    bool
	cancelled bool
}

func newModel(prompt string, options []string) model {
	return model{
		prompt:  prompt,
		options: options,
		keys:    defaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	// Render nothing once a decision is made so the list does not
	// linger above the command's real output.
	if m.chosen || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString("\n")
	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(option))
		} else {
			b.WriteString("  ")
			b.WriteString(option)
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("up/down to move, enter to select, esc to cancel"))
	b.WriteString("\n")
	return b.String()
}
