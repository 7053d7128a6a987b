// Package model defines the data structures shared by the converter engine and its front ends.
package model

// ReplyKind tells the UI how to render a Reply.
type ReplyKind string

const (
	// ReplyNone is returned for input that produces no output, such as blank lines.
	ReplyNone ReplyKind = "none"
	// ReplyMessage carries informational lines.
	ReplyMessage ReplyKind = "message"
	// ReplyConverted carries a converted line.
	ReplyConverted ReplyKind = "converted"
	// ReplyConverters carries the converter listing.
	ReplyConverters ReplyKind = "converters"
	// ReplyHelpIndex carries the list of help topics.
	ReplyHelpIndex ReplyKind = "help-index"
	// ReplyHelpTopic carries one help topic.
	ReplyHelpTopic ReplyKind = "help-topic"
	// ReplyError carries a user facing failure message.
	ReplyError ReplyKind = "error"
	// ReplyQuit ends the command loop.
	ReplyQuit ReplyKind = "quit"
)

// HelpTopic documents one loop command.
type HelpTopic struct {
	Command string
	Usage   string
	Summary string
	Details []string
	Aliases []string
}

// Reply is the result of handling one input line.
type Reply struct {
	Kind       ReplyKind
	Lines      []string
	Converted  string
	Converter  ConverterType
	Converters []ConverterInfo
	Topics     []HelpTopic
	Err        error
}

// Quit reports whether the loop should stop.
func (r Reply) Quit() bool {
	return r.Kind == ReplyQuit
}

// PreviewRow is one converter's rendering of a text.
type PreviewRow struct {
	Type   ConverterType
	Name   string
	Output string
	Err    error
}
