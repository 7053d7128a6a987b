package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/uniconv/internal/model"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rules <converter>",
		Short:        "Show the conversion rules of a converter",
		Long:         rulesLongDescription,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := resolveConverter(args[0])
			if err != nil {
				return err
			}

			info := m.ConverterInfo{
				Type:    conv.Type(),
				Name:    conv.Name(),
				Aliases: conv.Type().Aliases(),
			}

			return newUI(cmd).DisplayRules(info, conv.Rules())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
