// Package main is the fulmenctl developer CLI: an optional collaborator
// over the crucible-go core (spec "Developer CLI surface"), exposing
// catalog listing, schema validation/normalization/export, and identity
// inspection as cobra sub-commands.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/crucible-go/diagnostic"
	cclog "github.com/fulmenhq/crucible-go/log"
	"github.com/fulmenhq/crucible-go/profiler"
	"github.com/fulmenhq/crucible-go/version"
)

func main() {
	os.Exit(int(run(os.Args[1:])))
}

func run(args []string) diagnostic.ExitCode {
	logCfg := cclog.NewConfig()
	prof := profiler.New()
	var teePath string
	var tee *logTee

	root := &cobra.Command{
		Use:           "fulmenctl",
		Short:         "Inspect and validate the vendored crucible-go asset catalog",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.ErrOrStderr()
			if teePath != "" {
				var err error
				tee, err = newLogTee(teePath)
				if err != nil {
					return fmt.Errorf("open --log-tee file: %w", err)
				}
				w = io.MultiWriter(w, tee)
			}
			handler, err := logCfg.NewHandler(w)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(handler))
			slog.Debug("running command", "name", cmd.Name())
			return prof.Start()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if tee != nil {
				if err := tee.Close(); err != nil {
					return err
				}
			}
			return prof.Stop()
		},
	}

	logCfg.RegisterFlags(root.PersistentFlags())
	prof.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&teePath, "log-tee", "",
		"also write log output to this file, in addition to stderr")
	if err := logCfg.RegisterCompletions(root); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newValidateCmd(),
		newValidateSchemaCmd(),
		newNormalizeCmd(),
		newCompareCmd(),
		newExportCmd(),
		newIdentityShowCmd(),
		newIdentityValidateCmd(),
	)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return diagnostic.ExitCodeFor(err)
	}
	return diagnostic.ExitSuccess
}
