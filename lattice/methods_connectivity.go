// File: methods_connectivity.go
// Role: bond-graph reachability, connected components and pruning of
//       disconnected sites.
// Policy:
//   - Connectivity is undirected: a bond i→j makes j reachable from i and i
//     reachable from j. Wraps are ignored (a periodic bond still connects).

package lattice

import (
	"fmt"
	"sort"
)

const (
	methodReachable               = "Reachable"
	methodRemoveDisconnectedSites = "RemoveDisconnectedSites"
)

// adjacency returns the undirected neighbor lists of the bond graph.
func (g *Geometry[S, B]) adjacency() [][]int {
	adj := make([][]int, len(g.sites))
	for _, b := range g.bonds {
		adj[b.From] = append(adj[b.From], b.To)
		if b.From != b.To {
			adj[b.To] = append(adj[b.To], b.From)
		}
	}

	return adj
}

// Reachable marks every site reachable from origin through bonds.
//
// Errors:
//   - ErrInvalidIndex: origin outside [0, SiteCount()).
//
// Complexity: O(|sites| + |bonds|).
func (g *Geometry[S, B]) Reachable(origin int) ([]bool, error) {
	if origin < 0 || origin >= len(g.sites) {
		return nil, fmt.Errorf("%s: origin %d outside [0,%d): %w", methodReachable, origin, len(g.sites), ErrInvalidIndex)
	}
	seen := make([]bool, len(g.sites))
	bfsMark(g.adjacency(), origin, seen)

	return seen, nil
}

// bfsMark flags every vertex reachable from start in seen and returns them
// in visit order.
func bfsMark(adj [][]int, start int, seen []bool) []int {
	queue := []int{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range adj[queue[qi]] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// ConnectedComponents partitions the sites into bond-connected components.
// Components are ordered by their smallest site index; each component is
// sorted ascending.
//
// Complexity: O(|sites|·log|sites| + |bonds|).
func (g *Geometry[S, B]) ConnectedComponents() [][]int {
	adj := g.adjacency()
	seen := make([]bool, len(g.sites))
	var comps [][]int
	for i := range g.sites {
		if seen[i] {
			continue
		}
		comp := bfsMark(adj, i, seen)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// RemoveDisconnectedSites keeps only the sites reachable from origin and
// removes all others in a single renumbering pass. It returns the number
// of removed sites.
//
// Implementation:
//   - Stage 1: Compute reachability once against the current indexing.
//   - Stage 2: Remove every unreached site through the shared removal kernel.
//
// Errors:
//   - ErrInvalidIndex: origin outside [0, SiteCount()); nothing changes.
//
// Complexity: O(|sites| + |bonds|).
func (g *Geometry[S, B]) RemoveDisconnectedSites(origin int) (int, error) {
	seen, err := g.Reachable(origin)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodRemoveDisconnectedSites, err)
	}
	drop := make([]bool, len(seen))
	for i, ok := range seen {
		drop[i] = !ok
	}

	return g.removeMarked(drop), nil
}
