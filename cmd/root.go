// Package cmd provides the root command and CLI setup for uniconv.
package cmd

import (
	"fmt"
	"os"

	"github.com/mouse-blink/uniconv/internal/adapter"
	"github.com/mouse-blink/uniconv/internal/config"
	"github.com/mouse-blink/uniconv/internal/controller"
	"github.com/mouse-blink/uniconv/internal/domain"
	"github.com/mouse-blink/uniconv/internal/logger"
	"github.com/spf13/cobra"
)

var envConfig = config.Load()
var registry = domain.NewRegistry()
var settings config.Config
var noClipboardFlag bool
var quietFlag bool

var newClipboard = adapter.NewClipboard
var newUI = func(cmd *cobra.Command) controller.UI {
	useTTY := controller.IsTTY(cmd.OutOrStdout()) && controller.IsInputTTY(cmd.InOrStdin())
	return controller.NewUI(cmd, useTTY)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uniconv",
		Short: "Convert ASCII text into styled Unicode letterings",
		Long:  rootLongDescription,
		Args:  cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Init()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := newSession(cmd)
			if err != nil {
				return err
			}

			err = newUI(cmd).Run(session, startOptions(cmd)...)
			logger.Get().Debug("session ended", "converter", session.Current().Name())

			return err
		},
	}
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "do not print the welcome message")
	cmd.PersistentFlags().StringVarP(&settings.Converter, "converter", "c", envConfig.Converter, "converter name or alias to start with")
	cmd.PersistentFlags().BoolVar(&settings.Strict, "strict", envConfig.Strict, "reject lines containing characters the converter cannot map")
	cmd.PersistentFlags().BoolVar(&noClipboardFlag, "no-clipboard", !envConfig.Clipboard, "do not copy results to the clipboard")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func startOptions(cmd *cobra.Command) []controller.StartOption {
	var options []controller.StartOption

	if quietFlag {
		options = append(options, controller.WithoutWelcome())
	}

	// Piped input gets no prompt so the output holds only the replies.
	if !controller.IsInputTTY(cmd.InOrStdin()) {
		options = append(options, controller.WithPrompt(""))
	}

	return options
}

func resolveConverter(name string) (domain.Converter, error) {
	t, ok := registry.ResolveTypeFromAlias(name)
	if !ok {
		return domain.Converter{}, fmt.Errorf("%w: %q (see 'uniconv list')", domain.ErrUnknownConverterType, name)
	}

	return registry.GetConverter(t)
}

func newSession(cmd *cobra.Command) (domain.Session, error) {
	initial, err := resolveConverter(settings.Converter)
	if err != nil {
		return nil, err
	}

	log := logger.Get().With("command", cmd.Name())
	log.Debug("starting session",
		"converter", initial.Name(),
		"strict", settings.Strict,
		"clipboard", !noClipboardFlag,
	)

	return domain.NewSession(
		registry,
		domain.NewTransformer(settings.Strict),
		newClipboard(!noClipboardFlag),
		initial.Type(),
		log,
	)
}
