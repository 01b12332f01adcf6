// SPDX-License-Identifier: MIT
// File: distance.go
// Role: bond-distance expansion.

package expand

import (
	"fmt"

	"github.com/katalvlaran/latticekit/lattice"
)

const methodBondDistance = "BondDistance"

// BondDistance generates every site copy reachable from the origin site
// (WithOrigin, default 0) of the untranslated cell in at most maxDist bond
// hops. Bonds are followed in both orientations.
//
// Behavior highlights:
//   - maxDist = 0 yields the origin site alone (plus any zero-wrap self-bond).
//   - The result is fully open: N = 0 and every bond has an empty wrap.
//   - Only copies connected to the origin are generated.
//
// Errors:
//   - lattice.ErrNilUnitcell, lattice.ErrInvalidOrigin.
//   - ErrInvalidDistance: maxDist < 0.
//   - ErrOptionViolation, ErrSiteLimit, or the context error.
//
// Complexity: O(V·(deg + N)) for V generated sites.
func BondDistance[S, B comparable](uc *lattice.Unitcell[S, B], maxDist int, opts ...Option) (*lattice.Lattice[S, B], error) {
	if uc == nil {
		return nil, fmt.Errorf("%s: %w", methodBondDistance, lattice.ErrNilUnitcell)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBondDistance, err)
	}
	if maxDist < 0 {
		return nil, fmt.Errorf("%s: %d: %w", methodBondDistance, maxDist, ErrInvalidDistance)
	}
	if err = checkOrigin(uc, o.Origin); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBondDistance, err)
	}

	w := newWalker(uc, o, func(_ []float64, depth int) bool { return depth <= maxDist })
	out, err := w.run()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBondDistance, err)
	}
	o.Logger.Debug("expanded by bond distance",
		"max_distance", maxDist,
		"origin", o.Origin,
		"sites", out.SiteCount(),
		"bonds", out.BondCount(),
	)

	return out, nil
}
