package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/uniconv/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List converters and their aliases",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newUI(cmd).DisplayReply(m.Reply{
				Kind:       m.ReplyConverters,
				Converters: registry.Converters(),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
