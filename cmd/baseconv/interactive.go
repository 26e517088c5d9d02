package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/baseconv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldNumber = iota
	fieldInputBase
	fieldOutputBase
	fieldCount
)

type interactiveModel struct {
	inputs   [fieldCount]textinput.Model
	maxDepth int
	focusIdx int
	result   string
	inputErr error
}

func newInteractiveModel(inputBase, outputBase, maxDepth int) *interactiveModel {
	m := &interactiveModel{maxDepth: maxDepth}

	number := textinput.New()
	number.Prompt = "number: "
	number.Placeholder = "FF0.8"
	number.Width = 40
	number.Focus()
	m.inputs[fieldNumber] = number

	in := textinput.New()
	in.Prompt = "from base: "
	in.SetValue(strconv.Itoa(inputBase))
	in.Width = 6
	m.inputs[fieldInputBase] = in

	out := textinput.New()
	out.Prompt = "to base: "
	out.SetValue(strconv.Itoa(outputBase))
	out.Width = 6
	m.inputs[fieldOutputBase] = out

	m.convert()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "enter":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % fieldCount
			m.inputs[m.focusIdx].Focus()
			return m, nil

		case "shift+tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + fieldCount - 1) % fieldCount
			m.inputs[m.focusIdx].Focus()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}

	// Re-convert on every change, the way the original live GUI did.
	m.convert()

	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) convert() {
	m.result = ""
	m.inputErr = nil

	number := strings.TrimSpace(m.inputs[fieldNumber].Value())
	if number == "" {
		return
	}

	inputBase, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldInputBase].Value()))
	if err != nil {
		m.inputErr = fmt.Errorf("input base: %w", err)
		return
	}
	outputBase, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldOutputBase].Value()))
	if err != nil {
		m.inputErr = fmt.Errorf("output base: %w", err)
		return
	}

	c := baseconv.New(inputBase, outputBase)
	c.MaxDepth = m.maxDepth

	s, err := c.ConvertString(number)
	if err != nil {
		m.inputErr = err
		return
	}
	m.result = s
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("baseconv"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("result: "))
	switch {
	case m.inputErr != nil:
		b.WriteString(errorStyle.Render(m.inputErr.Error()))
	case m.result == "":
		b.WriteString(placeholderStyle.Render("output"))
	default:
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab next field • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(inputBase, outputBase, maxDepth int) error {
	p := tea.NewProgram(newInteractiveModel(inputBase, outputBase, maxDepth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
