package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mouse-blink/uniconv/internal/adapter"
	m "github.com/mouse-blink/uniconv/internal/model"
	"github.com/samber/lo"
)

// WelcomeMessage is shown when an interactive session starts.
const WelcomeMessage = "Welcome to ASCII-Converter v 2.0.\n" +
	"Type /h for help. Type /q for quit.\n" +
	"Results are stored in the clipboard."

const (
	msgInvalidCommand    = "Invalid command! Type /h for help!"
	msgConverterNotFound = "Could not find specified converter. Using default instead."
	msgTopicNotFound     = "Couldn't find specified command!"
	msgCannotConvert     = "Couldn't convert this line. Certain characters not supported."
)

// Session interprets the lines of an interactive conversion loop.
type Session interface {
	Welcome() m.Reply
	Handle(line string) m.Reply
	Convert(text string) m.Reply
	Current() Converter
}

type command struct {
	name    string
	aliases []string
	topic   *m.HelpTopic
	run     func(s *session, args []string) m.Reply
}

func defaultCommands() []command {
	return []command{
		{
			name:    "quit",
			aliases: []string{"quit", "q", "exit"},
			topic: &m.HelpTopic{
				Usage:   "/<quit>",
				Summary: "Exits the program",
			},
			run: func(_ *session, _ []string) m.Reply {
				return m.Reply{Kind: m.ReplyQuit}
			},
		},
		{
			name:    "set",
			aliases: []string{"set", "converter"},
			topic: &m.HelpTopic{
				Usage:   "/<set> <converter?>",
				Summary: "Selects the converter used for plain input lines",
				Details: []string{
					"Without a converter it shows the one currently in use.",
					"Typing /<converter> alone does the same as /set <converter>.",
				},
			},
			run: (*session).setConverter,
		},
		{
			name:    "help",
			aliases: []string{"help", "h"},
			topic: &m.HelpTopic{
				Usage:   "/<help> <command?>",
				Summary: "Displays a short help notice for the given topic",
				Details: []string{"If no command is specified, it lists off all possible user commands"},
			},
			run: (*session).help,
		},
		{
			name:    "list",
			aliases: []string{"list", "l", "all"},
			topic: &m.HelpTopic{
				Usage:   "/<list>",
				Summary: "Lists all available converters and their aliases.",
			},
			run: func(s *session, _ []string) m.Reply {
				return m.Reply{Kind: m.ReplyConverters, Converters: s.registry.Converters()}
			},
		},
	}
}

type session struct {
	registry    Registry
	transformer Transformer
	clipboard   adapter.Clipboard
	current     Converter
	commands    []command
	log         *slog.Logger
}

// NewSession creates a Session that starts with the initial converter.
func NewSession(registry Registry, transformer Transformer, clipboard adapter.Clipboard, initial m.ConverterType, log *slog.Logger) (Session, error) {
	current, err := registry.GetConverter(initial)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.Default()
	}

	return &session{
		registry:    registry,
		transformer: transformer,
		clipboard:   clipboard,
		current:     current,
		commands:    defaultCommands(),
		log:         log,
	}, nil
}

func (s *session) Welcome() m.Reply {
	return message(strings.Split(WelcomeMessage, "\n")...)
}

func (s *session) Current() Converter {
	return s.current
}

// Handle runs a meta command for lines starting with '/' or '\'
// and converts any other non-blank line.
func (s *session) Handle(line string) m.Reply {
	if strings.TrimSpace(line) == "" {
		return m.Reply{Kind: m.ReplyNone}
	}

	if line[0] != '/' && line[0] != '\\' {
		return s.Convert(line)
	}

	args := strings.Split(line[1:], " ")
	name := strings.ToLower(args[0])

	if cmd, ok := s.findCommand(name); ok {
		return cmd.run(s, lo.Map(args, func(arg string, _ int) string {
			return strings.ToLower(arg)
		}))
	}

	t, ok := s.registry.ResolveTypeFromAlias(name)
	if !ok {
		return failure(nil, msgInvalidCommand)
	}

	if len(args) == 1 {
		return s.setConverter([]string{"set", name})
	}

	return s.convertOnce(t, strings.Join(args[1:], " "))
}

// Convert converts text with the current converter and copies the result.
func (s *session) Convert(text string) m.Reply {
	return s.convertWith(s.current, text)
}

func (s *session) convertOnce(t m.ConverterType, text string) m.Reply {
	conv, err := s.registry.GetConverter(t)
	if err != nil {
		return failure(err, err.Error())
	}

	return s.convertWith(conv, text)
}

func (s *session) convertWith(conv Converter, text string) m.Reply {
	out, err := s.transformer.Transform(conv, text)
	if err != nil {
		if errors.Is(err, ErrCannotConvert) {
			s.log.Debug("conversion rejected", "converter", conv.Name(), "error", err)
			return failure(err, msgCannotConvert)
		}

		return failure(err, fmt.Sprintf("Conversion failed: %v", err))
	}

	if err := s.clipboard.WriteText(out); err != nil {
		s.log.Warn("failed to copy result to clipboard", "error", err)
	}

	return m.Reply{Kind: m.ReplyConverted, Converted: out, Converter: conv.Type()}
}

func (s *session) setConverter(args []string) m.Reply {
	if len(args) <= 1 {
		return message(fmt.Sprintf("Currently using: %s", s.current.Name()))
	}

	t, ok := s.registry.ResolveTypeFromAlias(strings.Join(args[1:], " "))

	conv, err := s.registry.GetConverter(t)
	if err != nil {
		return failure(err, err.Error())
	}

	s.current = conv
	s.log.Debug("converter selected", "converter", conv.Name(), "resolved", ok)

	if !ok {
		return message(msgConverterNotFound)
	}

	return message(fmt.Sprintf("Using %s...", conv.Name()))
}

func (s *session) help(args []string) m.Reply {
	if len(args) <= 1 {
		return m.Reply{Kind: m.ReplyHelpIndex, Topics: s.topics()}
	}

	cmd, ok := s.findCommand(args[1])
	if !ok || cmd.topic == nil {
		return failure(nil, msgTopicNotFound)
	}

	return m.Reply{Kind: m.ReplyHelpTopic, Topics: []m.HelpTopic{topicOf(cmd)}}
}

func (s *session) findCommand(name string) (command, bool) {
	return lo.Find(s.commands, func(cmd command) bool {
		return lo.Contains(cmd.aliases, name)
	})
}

func (s *session) topics() []m.HelpTopic {
	documented := lo.Filter(s.commands, func(cmd command, _ int) bool {
		return cmd.topic != nil
	})

	return lo.Map(documented, func(cmd command, _ int) m.HelpTopic {
		return topicOf(cmd)
	})
}

func topicOf(cmd command) m.HelpTopic {
	topic := *cmd.topic
	topic.Command = cmd.name
	topic.Aliases = cmd.aliases

	return topic
}

func message(lines ...string) m.Reply {
	return m.Reply{Kind: m.ReplyMessage, Lines: lines}
}

func failure(err error, lines ...string) m.Reply {
	return m.Reply{Kind: m.ReplyError, Lines: lines, Err: err}
}
