// Package layout assigns 2D positions to a flow graph with a simplified
// layered (Sugiyama-style) algorithm: longest-path ranks along the main
// axis, insertion-order packing along the cross axis. The layout is a
// pure function of its inputs, which makes results snapshot-testable
// and lets renderers diff positions between rebuilds without flicker.
package layout

import (
	"github.com/moneymap-dev/moneymap/internal/graph"
)

// Orientation selects which axis ranks advance along.
type Orientation string

const (
	// Vertical stacks ranks top to bottom.
	Vertical Orientation = "vertical"
	// Horizontal stacks ranks left to right.
	Horizontal Orientation = "horizontal"
)

// ParseOrientation normalizes a raw string; unknown values map to Vertical.
func ParseOrientation(s string) Orientation {
	if Orientation(s) == Horizontal {
		return Horizontal
	}
	return Vertical
}

// Node box extents and spacing. Coordinates returned are top-left
// reference points, so half-extents are subtracted from rank anchors.
const (
	NodeWidth  = 160.0
	NodeHeight = 80.0

	DefaultRankSpacing = 220.0
	DefaultNodeSpacing = 200.0
)

// Options tunes spacing and orientation. Zero value means vertical
// orientation with default spacing.
type Options struct {
	Orientation Orientation
	RankSpacing float64
	NodeSpacing float64
}

func (o Options) withDefaults() Options {
	if o.Orientation == "" {
		o.Orientation = Vertical
	}
	if o.RankSpacing <= 0 {
		o.RankSpacing = DefaultRankSpacing
	}
	if o.NodeSpacing <= 0 {
		o.NodeSpacing = DefaultNodeSpacing
	}
	return o
}

// PositionedNode is a graph node with its assigned rank and coordinates.
type PositionedNode struct {
	graph.Node
	Rank int     `json:"rank"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Info reports defensive decisions made during layout.
type Info struct {
	// CycleNodeIDs lists nodes whose rank could not be settled because
	// they sit on a cycle; they were forced to rank 0.
	CycleNodeIDs []string `json:"cycle_node_ids,omitempty"`
}

// Apply ranks and positions the nodes. Edges referencing unknown nodes
// are ignored. The flow graph is a DAG by construction; a cycle in the
// input is tolerated by forcing its nodes to rank 0 after the bounded
// relaxation completes, never by looping.
func Apply(nodes []graph.Node, edges []graph.Edge, opts Options) ([]PositionedNode, Info) {
	opts = opts.withDefaults()

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	// Adjacency and indegree over known endpoints only.
	succ := make([][]int, len(nodes))
	indegree := make([]int, len(nodes))
	for _, e := range edges {
		si, okS := index[e.Source]
		ti, okT := index[e.Target]
		if !okS || !okT {
			continue
		}
		succ[si] = append(succ[si], ti)
		indegree[ti]++
	}

	// Kahn traversal in insertion order keeps ties stable: the queue is
	// seeded and appended in node order, and rank(v) is the max over
	// predecessors plus one.
	rank := make([]int, len(nodes))
	queue := make([]int, 0, len(nodes))
	remaining := make([]int, len(nodes))
	copy(remaining, indegree)
	for i := range nodes {
		if remaining[i] == 0 {
			queue = append(queue, i)
		}
	}

	visited := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited++
		for _, v := range succ[u] {
			if rank[u]+1 > rank[v] {
				rank[v] = rank[u] + 1
			}
			remaining[v]--
			if remaining[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	var info Info
	if visited < len(nodes) {
		// Anything the traversal never released sits on a cycle.
		for i := range nodes {
			if remaining[i] > 0 {
				rank[i] = 0
				info.CycleNodeIDs = append(info.CycleNodeIDs, nodes[i].ID)
			}
		}
	}

	// Pack each rank along the cross axis in insertion order.
	slot := make([]int, len(nodes))
	perRank := make(map[int]int)
	for i := range nodes {
		slot[i] = perRank[rank[i]]
		perRank[rank[i]]++
	}

	positioned := make([]PositionedNode, len(nodes))
	for i, n := range nodes {
		main := float64(rank[i]) * opts.RankSpacing
		cross := float64(slot[i]) * opts.NodeSpacing

		var x, y float64
		if opts.Orientation == Horizontal {
			x = main - NodeWidth/2
			y = cross - NodeHeight/2
		} else {
			x = cross - NodeWidth/2
			y = main - NodeHeight/2
		}
		positioned[i] = PositionedNode{Node: n, Rank: rank[i], X: x, Y: y}
	}
	return positioned, info
}
