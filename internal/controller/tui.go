package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/uniconv/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Run starts the Bubble Tea program and blocks until it exits.
func (t *TUI) Run(handler Handler, options ...StartOption) error {
	return t.runWithModel(newReplModel(handler, newStartConfig(options)))
}

func (t *TUI) runWithModel(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithInput(t.input), tea.WithOutput(t.output))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}

// DisplayReply prints a styled reply and returns its error, if any.
func (t *TUI) DisplayReply(reply m.Reply) error {
	if out := styleReply(reply); out != "" {
		_, _ = fmt.Fprintln(t.output, out)
	}

	return reply.Err
}

// DisplayPreview prints the preview table.
func (t *TUI) DisplayPreview(rows []m.PreviewRow) error {
	_, _ = fmt.Fprint(t.output, renderPreview(rows))

	return nil
}

// DisplayRules prints the converter's rules.
func (t *TUI) DisplayRules(info m.ConverterInfo, rules []m.ConversionRule) error {
	_, _ = fmt.Fprint(t.output, titleStyle.Render(info.Name)+"\n"+renderRules(info, rules))

	return nil
}
