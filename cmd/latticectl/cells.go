// SPDX-License-Identifier: MIT
// File: cells.go
// Role: "cells" and "show" subcommands.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticekit/latticeio"
)

func newCellsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cells",
		Short: "List the registered unitcells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tD\tN\tSITES\tBONDS")
			for _, name := range a.lib.Names() {
				uc, err := a.lib.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", name, uc.Dim(), uc.BravaisDim(), uc.SiteCount(), uc.BondCount())
			}

			return tw.Flush()
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <cell>",
		Short: "Print a unitcell as a YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.lib.Lookup(args[0])
			if err != nil {
				return err
			}

			return latticeio.EncodeUnitcell(cmd.OutOrStdout(), normalizeName(args[0]), uc)
		},
	}
}
