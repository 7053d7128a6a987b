package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/mouse-blink/uniconv/internal/domain"
	"github.com/spf13/cobra"
)

var convertAllFlag bool

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "convert [text...]",
		Short:        "Convert text once",
		Long:         convertLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := newUI(cmd)

			if convertAllFlag {
				if len(args) == 0 {
					return errors.New("--all needs the text to preview as arguments")
				}

				rows, err := domain.NewTransformer(settings.Strict).Preview(cmd.Context(), registry, strings.Join(args, " "))
				if err != nil {
					return err
				}

				return ui.DisplayPreview(rows)
			}

			session, err := newSession(cmd)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				return ui.DisplayReply(session.Convert(strings.Join(args, " ")))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := scanner.Text()
				if strings.TrimSpace(line) == "" {
					continue
				}

				if err := ui.DisplayReply(session.Convert(line)); err != nil {
					return err
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&convertAllFlag, "all", "a", false, "preview the text with every converter")

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
