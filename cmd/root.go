// Package cmd implements navsample, a command-line driver that loads a tab
// layout and replays scripted navigation against it, printing each state the
// way a renderer would see it.
package cmd

import (
	"github.com/BrandonKowalski/navstate/pkg/navstate"
	"github.com/BrandonKowalski/navstate/pkg/navstate/constants"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	layoutPath string
	langs      []string
	messages   []string
	logLevel   string
	debug      bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "navsample",
		Short:         "Replay navigation scripts against a tab layout",
		Long:          "navsample loads a TOML tab layout, applies navigation commands (push, pop, present, switch tab, ...) and prints the resulting navigation state after every change.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			navstate.Init(navstate.Options{
				LogLevel: opts.logLevel,
				Debug:    opts.debug,
			})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.layoutPath, "layout", constants.EnvOr(constants.LayoutPathEnvVar, constants.DefaultLayoutFile), "tab layout file (TOML)")
	flags.StringSliceVar(&opts.langs, "lang", []string{constants.EnvOr(constants.LanguageEnvVar, constants.DefaultLanguage)}, "preferred title languages, most preferred first")
	flags.StringArrayVar(&opts.messages, "messages", nil, "message file for titles, e.g. active.en.toml (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "", "application log level (debug, info, warn, error)")
	flags.BoolVar(&opts.debug, "debug", false, "log ignored navigation requests and state changes")

	rootCmd.AddCommand(
		newReplayCmd(opts),
		newTabsCmd(opts),
	)

	return rootCmd
}
