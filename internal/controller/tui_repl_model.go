package controller

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/uniconv/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func replyStyle(kind m.ReplyKind) lipgloss.Style {
	switch kind {
	case m.ReplyConverted:
		return resultStyle
	case m.ReplyError:
		return errorStyle
	case m.ReplyMessage:
		return messageStyle
	default:
		return lipgloss.NewStyle()
	}
}

func styleReply(reply m.Reply) string {
	out := strings.TrimRight(renderReply(reply), "\n")
	if out == "" {
		return ""
	}

	return replyStyle(reply.Kind).Render(out)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// historyLine is one unstyled output line of the loop.
type historyLine struct {
	text  string
	style lipgloss.Style
}

// replModel is the Bubble Tea model of the interactive loop.
type replModel struct {
	handler  Handler
	input    textinput.Model
	prompt   string
	history  []historyLine
	width    int
	height   int
	quitting bool
}

func newReplModel(handler Handler, cfg StartConfig) replModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(cfg.prompt)
	ti.Placeholder = "text to convert, or /help"
	ti.Focus()

	model := replModel{
		handler: handler,
		input:   ti,
		prompt:  cfg.prompt,
	}

	if cfg.welcome {
		model = model.appendText(renderReply(handler.Welcome()), titleStyle)
	}

	return model
}

func (r replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (r replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			r.quitting = true
			return r, tea.Quit
		case tea.KeyEnter:
			line := r.input.Value()
			r.input.Reset()
			r = r.submit(line)

			if r.quitting {
				return r, tea.Quit
			}

			return r, nil
		}
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.input.Width = max(msg.Width-lipgloss.Width(r.prompt)-1, 1)
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)

	return r, cmd
}

func (r replModel) submit(line string) replModel {
	reply := r.handler.Handle(line)

	if strings.TrimSpace(line) != "" {
		r = r.appendText(r.prompt+line, subtleStyle)
	}

	r = r.appendText(renderReply(reply), replyStyle(reply.Kind))

	if reply.Quit() {
		r.quitting = true
	}

	return r
}

func (r replModel) appendText(text string, style lipgloss.Style) replModel {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return r
	}

	for _, line := range strings.Split(text, "\n") {
		r.history = append(r.history, historyLine{text: line, style: style})
	}

	return r
}

func (r replModel) View() string {
	if r.quitting {
		// The last frame stays on the terminal, so leave the results without the input.
		return r.renderHistory(r.height)
	}

	var sb strings.Builder

	// Keep room for the input line and the key hint.
	sb.WriteString(r.renderHistory(r.height - 2))
	sb.WriteString(r.input.View())
	sb.WriteString("\n")
	sb.WriteString(subtleStyle.Render("enter to convert • /h for help • esc to quit"))

	return sb.String()
}

func (r replModel) renderHistory(maxLines int) string {
	lines := r.history
	if r.height > 0 && maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	var sb strings.Builder

	for _, line := range lines {
		text := line.text
		if r.width > 0 {
			text = truncateToWidth(text, r.width)
		}

		sb.WriteString(line.style.Render(text))
		sb.WriteString("\n")
	}

	return sb.String()
}
