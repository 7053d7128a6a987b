package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/uniconv/internal/model"
	"github.com/olekukonko/tablewriter"
)

func renderTable(header []string, rows [][]string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()

	return buf.String()
}

func renderReply(reply m.Reply) string {
	switch reply.Kind {
	case m.ReplyMessage, m.ReplyError:
		return strings.Join(reply.Lines, "\n") + "\n"
	case m.ReplyConverted:
		return fmt.Sprintf(">>> %s\n", reply.Converted)
	case m.ReplyConverters:
		return "Available Converters:\n\n" + renderConverters(reply.Converters)
	case m.ReplyHelpIndex:
		return "Help Commands:\n\n" + renderHelpIndex(reply.Topics)
	case m.ReplyHelpTopic:
		if len(reply.Topics) == 0 {
			return ""
		}

		return renderHelpTopic(reply.Topics[0])
	default:
		return ""
	}
}

func renderConverters(infos []m.ConverterInfo) string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.Name, strings.Join(info.Aliases, ", ")})
	}

	return renderTable([]string{"Converter", "Aliases"}, rows)
}

func renderHelpIndex(topics []m.HelpTopic) string {
	rows := make([][]string, 0, len(topics))
	for _, topic := range topics {
		rows = append(rows, []string{topic.Command, topic.Usage, topic.Summary})
	}

	return renderTable([]string{"Command", "Usage", "Description"}, rows)
}

func renderHelpTopic(topic m.HelpTopic) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s:\n", strings.ToUpper(topic.Command))
	fmt.Fprintf(&sb, "%s\n\n", topic.Usage)
	fmt.Fprintf(&sb, "Aliases: %s\n", strings.Join(topic.Aliases, ", "))
	fmt.Fprintf(&sb, "%s\n", topic.Summary)

	for _, line := range topic.Details {
		fmt.Fprintf(&sb, "%s\n", line)
	}

	return sb.String()
}

func renderPreview(rows []m.PreviewRow) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		output := row.Output
		if row.Err != nil {
			output = "(cannot convert)"
		}

		cells = append(cells, []string{row.Name, output})
	}

	return renderTable([]string{"Converter", "Output"}, cells)
}

func renderRules(info m.ConverterInfo, rules []m.ConversionRule) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%s):\n", info.Name, strings.Join(info.Aliases, ", "))

	if len(rules) == 0 {
		sb.WriteString("  no rules, every character is kept as is\n")
		return sb.String()
	}

	for i, rule := range rules {
		if from, to, ok := rule.Pair(); ok {
			fmt.Fprintf(&sb, "  #%d absolute %q -> %U\n", i+1, from, to)
		} else {
			fmt.Fprintf(&sb, "  #%d range %U-%U %+#x\n", i+1, rule.Min(), rule.Max(), rule.Offset())
		}
		fmt.Fprintf(&sb, "     %s\n", rule)
	}

	return sb.String()
}
