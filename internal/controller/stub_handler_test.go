package controller

import (
	m "github.com/mouse-blink/uniconv/internal/model"
)

// stubHandler echoes lines upper-cased and quits on "/q".
type stubHandler struct {
	lines []string
}

func (h *stubHandler) Welcome() m.Reply {
	return m.Reply{Kind: m.ReplyMessage, Lines: []string{"Welcome!"}}
}

func (h *stubHandler) Handle(line string) m.Reply {
	h.lines = append(h.lines, line)

	switch line {
	case "":
		return m.Reply{Kind: m.ReplyNone}
	case "/q":
		return m.Reply{Kind: m.ReplyQuit}
	case "/bad":
		return m.Reply{Kind: m.ReplyError, Lines: []string{"Invalid command!"}}
	default:
		return m.Reply{Kind: m.ReplyConverted, Converted: "<" + line + ">"}
	}
}
