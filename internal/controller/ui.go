// Package controller provides the front ends that drive a conversion session.
package controller

import (
	m "github.com/mouse-blink/uniconv/internal/model"
)

const defaultPrompt = "> "

// Handler answers the lines typed into the loop.
type Handler interface {
	Welcome() m.Reply
	Handle(line string) m.Reply
}

// StartOption is a functional option for Run.
type StartOption func(*StartConfig)

// StartConfig holds configuration for running the loop.
type StartConfig struct {
	prompt  string
	welcome bool
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{prompt: defaultPrompt, welcome: true}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// WithPrompt sets the prompt printed before each input line.
func WithPrompt(prompt string) StartOption {
	return func(c *StartConfig) {
		c.prompt = prompt
	}
}

// WithoutWelcome skips the welcome message.
func WithoutWelcome() StartOption {
	return func(c *StartConfig) {
		c.welcome = false
	}
}

// UI defines the interface for the interactive loop and one-shot output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Run reads lines until the handler asks to quit or input ends.
	Run(handler Handler, options ...StartOption) error
	// DisplayReply prints a single reply and returns its error, if any.
	DisplayReply(reply m.Reply) error
	// DisplayPreview prints one text rendered by every converter.
	DisplayPreview(rows []m.PreviewRow) error
	// DisplayRules prints the rule sequence of a converter.
	DisplayRules(info m.ConverterInfo, rules []m.ConversionRule) error
}
