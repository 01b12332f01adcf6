// SPDX-License-Identifier: MIT
// File: build.go
// Role: "build" subcommands, one per expansion policy.
// AI-HINT (file):
//   - Flags bind into one buildFlags value per command tree.
//   - --prune keeps the component of the origin copy: site index --origin
//     for periodic blocks, site 0 for traversal policies.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticekit/expand"
	"github.com/katalvlaran/latticekit/lattice"
	"github.com/katalvlaran/latticekit/latticeio"
	"github.com/katalvlaran/latticekit/unitcells"
)

var errUsage = errors.New("invalid flags")

// Output formats.
const (
	outputSummary = "summary"
	outputYAML    = "yaml"
)

type buildFlags struct {
	cell     string
	origin   int
	maxSites int
	prune    bool
	output   string

	extent     []int
	boundaries []string
	maxDist    int
	center     []float64
	radius     float64
	dims       []float64
}

type intLattice = lattice.Lattice[int, int]

// built is the result of one expansion before output.
type built struct {
	lattice   *intLattice
	pruneFrom int
}

func newBuildCmd(a *app) *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Expand a unitcell into a finite lattice",
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.cell, "cell", unitcells.NameSquare, "unitcell name")
	pf.IntVar(&f.origin, "origin", 0, "unitcell site index of the origin")
	pf.IntVar(&f.maxSites, "max-sites", expand.DefaultMaxSites, "abort when more sites would be generated")
	pf.BoolVar(&f.prune, "prune", false, "remove sites disconnected from the origin")
	pf.StringVarP(&f.output, "output", "o", outputSummary, "output format: summary|yaml")

	periodic := &cobra.Command{
		Use:   "periodic",
		Short: "Periodic block of --extent cells",
		Args:  cobra.NoArgs,
		RunE: a.runBuild(f, func(uc *unitcells.Cell, opts []expand.Option) (built, error) {
			bs, err := parseBoundaries(f.boundaries)
			if err != nil {
				return built{}, err
			}
			opts = append(opts, bs...)
			l, err := expand.Periodic(uc, f.extent, opts...)
			return built{lattice: l, pruneFrom: f.origin}, err
		}),
	}
	periodic.Flags().IntSliceVar(&f.extent, "extent", nil, "cells per lattice direction, e.g. 4,4")
	periodic.Flags().StringSliceVar(&f.boundaries, "boundary", nil, "periodic|open, once or per direction")
	_ = periodic.MarkFlagRequired("extent")

	distance := &cobra.Command{
		Use:   "distance",
		Short: "Every site within --max bond hops of the origin",
		Args:  cobra.NoArgs,
		RunE: a.runBuild(f, func(uc *unitcells.Cell, opts []expand.Option) (built, error) {
			l, err := expand.BondDistance(uc, f.maxDist, opts...)
			return built{lattice: l}, err
		}),
	}
	distance.Flags().IntVar(&f.maxDist, "max", 1, "maximum bond distance")

	sphere := &cobra.Command{
		Use:   "sphere",
		Short: "Sites inside a ball connected to the origin",
		Args:  cobra.NoArgs,
		RunE: a.runBuild(f, func(uc *unitcells.Cell, opts []expand.Option) (built, error) {
			l, err := expand.Sphere(uc, centerOrZero(f.center, uc.Dim()), f.radius, opts...)
			return built{lattice: l}, err
		}),
	}
	sphere.Flags().Float64SliceVar(&f.center, "center", nil, "ball center (default: the origin of space)")
	sphere.Flags().Float64Var(&f.radius, "radius", 1, "ball radius")

	box := &cobra.Command{
		Use:   "box",
		Short: "Sites inside an axis-aligned box connected to the origin",
		Args:  cobra.NoArgs,
		RunE: a.runBuild(f, func(uc *unitcells.Cell, opts []expand.Option) (built, error) {
			l, err := expand.Box(uc, centerOrZero(f.center, uc.Dim()), f.dims, opts...)
			return built{lattice: l}, err
		}),
	}
	box.Flags().Float64SliceVar(&f.center, "center", nil, "box center (default: the origin of space)")
	box.Flags().Float64SliceVar(&f.dims, "dims", nil, "box side lengths, one per spatial dimension")
	_ = box.MarkFlagRequired("dims")

	cmd.AddCommand(periodic, distance, sphere, box)

	return cmd
}

// runBuild wraps a policy into a cobra RunE: lookup, expand, prune, print.
func (a *app) runBuild(f *buildFlags, policy func(*unitcells.Cell, []expand.Option) (built, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if f.output != outputSummary && f.output != outputYAML {
			return fmt.Errorf("--output %q: %w", f.output, errUsage)
		}
		uc, err := a.lib.Lookup(f.cell)
		if err != nil {
			return err
		}
		opts := []expand.Option{
			expand.WithContext(cmd.Context()),
			expand.WithOrigin(f.origin),
			expand.WithMaxSites(f.maxSites),
			expand.WithLogger(a.logger),
		}
		res, err := policy(uc, opts)
		if err != nil {
			return err
		}

		l := res.lattice
		if f.prune && l.SiteCount() > 0 {
			removed, err := l.RemoveDisconnectedSites(res.pruneFrom)
			if err != nil {
				return err
			}
			a.logger.Debug("pruned disconnected sites", "removed", removed)
		}

		if f.output == outputYAML {
			return latticeio.EncodeLattice(cmd.OutOrStdout(), l)
		}

		return writeSummary(cmd.OutOrStdout(), normalizeName(f.cell), l)
	}
}

// parseBoundaries turns --boundary values into options: one value applies
// to every direction, several values are taken per direction.
func parseBoundaries(values []string) ([]expand.Option, error) {
	if len(values) == 0 {
		return nil, nil
	}
	bs := make([]expand.Boundary, len(values))
	for i, v := range values {
		b, err := expand.ParseBoundary(v)
		if err != nil {
			return nil, err
		}
		bs[i] = b
	}
	if len(bs) == 1 {
		return []expand.Option{expand.WithUniformBoundary(bs[0])}, nil
	}

	return []expand.Option{expand.WithBoundaries(bs...)}, nil
}

func centerOrZero(center []float64, dim int) []float64 {
	if len(center) == 0 {
		return make([]float64, dim)
	}

	return center
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func writeSummary(w io.Writer, cell string, l *intLattice) error {
	_, err := fmt.Fprintf(w,
		"cell:       %s\nsites:      %d\nbonds:      %d\ndimension:  D=%d N=%d (%s)\ncomponents: %d\n",
		cell, l.SiteCount(), l.BondCount(), l.Dim(), l.BravaisDim(), l.Kind(), len(l.ConnectedComponents()))

	return err
}
