// Package cli exposes the journal use case as logbook subcommands.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"looking-glass/internal/journal"
	"looking-glass/pkg/log"
)

// Flags are the persistent flags shared by every subcommand.
type Flags struct {
	ConfigFile  string
	APIURL      string
	Interactive bool // set for the tui command, whose screen must stay free of log output
}

// SetupFunc builds the use case and logger once flags are parsed.
type SetupFunc func(ctx context.Context, flags Flags) (journal.UseCase, log.Logger, error)

// RunTUIFunc runs the interactive view until the user quits.
type RunTUIFunc func(ctx context.Context, uc journal.UseCase, l log.Logger) error

type Options struct {
	Version string
	Setup   SetupFunc
	RunTUI  RunTUIFunc
}

type app struct {
	opts  Options
	flags Flags
	uc    journal.UseCase
	l     log.Logger
}

// New returns the root command with every subcommand attached.
func New(opts Options) *cobra.Command {
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "logbook",
		Short:         "A minimalist daily log tracker",
		Long:          `Create, read, update, and delete what you did each day on a LookingGlass server.`,
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&a.flags.ConfigFile, "config", "", "path to a config file")
	root.PersistentFlags().StringVar(&a.flags.APIURL, "api-url", "", "base URL of the log API (overrides config)")

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.addCmd(),
		a.editCmd(),
		a.deleteCmd(),
		a.tagsCmd(),
		a.pingCmd(),
		a.tuiCmd(),
		a.versionCmd(),
	)
	return root
}

// setup wires dependencies on first use, so "version" and "help" never
// touch config or the network.
func (a *app) setup(ctx context.Context, interactive bool) error {
	if a.uc != nil {
		return nil
	}
	flags := a.flags
	flags.Interactive = interactive

	uc, l, err := a.opts.Setup(ctx, flags)
	if err != nil {
		return err
	}
	if l == nil {
		l = log.NewNop()
	}
	a.uc, a.l = uc, l
	return nil
}
