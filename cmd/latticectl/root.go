// SPDX-License-Identifier: MIT
// File: root.go
// Role: root command, shared state and logger setup.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticekit/unitcells"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	verbose  bool
	cellFile string

	logger *slog.Logger
	lib    *unitcells.Library
}

// newRootCmd builds a fresh command tree; tests call it once per case.
func newRootCmd() *cobra.Command {
	a := &app{
		logger: slog.New(slog.DiscardHandler),
		lib:    unitcells.NewLibrary(),
	}

	root := &cobra.Command{
		Use:           "latticectl",
		Short:         "Build and inspect finite lattices",
		Long:          "latticectl expands unitcells into finite lattices by periodic block, bond distance or real-space shape.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug records to stderr")
	root.PersistentFlags().StringVar(&a.cellFile, "cell-file", "", "YAML stream of extra named unitcells to register")

	root.AddCommand(
		newCellsCmd(a),
		newShowCmd(a),
		newBuildCmd(a),
	)

	return root
}

// setup installs the logger and loads extra unitcells.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.cellFile == "" {
		return nil
	}
	names, err := a.lib.LoadFile(a.cellFile)
	if err != nil {
		return err
	}
	a.logger.Debug("loaded unitcells", "path", a.cellFile, "names", names)

	return nil
}
