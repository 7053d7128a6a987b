package controller

import (
	"bufio"
	"fmt"

	m "github.com/mouse-blink/uniconv/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI on top of the cobra Command's input and output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Run reads one line at a time until the handler quits or input ends.
func (s *SimpleUI) Run(handler Handler, options ...StartOption) error {
	cfg := newStartConfig(options)

	if cfg.welcome {
		s.printf("\n%s\n", renderReply(handler.Welcome()))
	}

	scanner := bufio.NewScanner(s.cmd.InOrStdin())

	for {
		if cfg.prompt != "" {
			s.printf("%s", cfg.prompt)
		}

		if !scanner.Scan() {
			break
		}

		reply := handler.Handle(scanner.Text())
		_ = s.DisplayReply(reply)

		if reply.Quit() {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// DisplayReply prints the reply and returns its error, if any.
func (s *SimpleUI) DisplayReply(reply m.Reply) error {
	if out := renderReply(reply); out != "" {
		s.printf("%s", out)
	}

	return reply.Err
}

// DisplayPreview prints the preview table.
func (s *SimpleUI) DisplayPreview(rows []m.PreviewRow) error {
	s.printf("%s", renderPreview(rows))

	return nil
}

// DisplayRules prints the converter's rules.
func (s *SimpleUI) DisplayRules(info m.ConverterInfo, rules []m.ConversionRule) error {
	s.printf("%s", renderRules(info, rules))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
