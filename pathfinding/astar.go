package pathfinding

import (
	"container/heap"
	"fmt"

	"conduit/core"
	"conduit/geometry"
)

// direction is how the search arrived at a grid node. It is part of the
// search state, not just an annotation: the cost of stepping into a neighbor
// depends on whether the step continues straight or turns, so "arrived
// horizontally" and "arrived vertically" at the same node are distinct
// states.
type direction int

const (
	dirNone direction = iota // at the start, before the first move
	dirHorizontal
	dirVertical
)

// searchState represents one (node, arrival direction) state in the A* search.
type searchState struct {
	node   int
	dir    direction
	gCost  float64 // Cost from start
	hCost  float64 // Heuristic cost to goal
	fCost  float64 // gCost + hCost
	parent *searchState
	seq    int // Insertion order, used as the final tie-break
	index  int // Index in the heap
}

type stateKey struct {
	node int
	dir  direction
}

// stateQueue is a priority queue for search states.
type stateQueue []*searchState

func (sq stateQueue) Len() int { return len(sq) }

func (sq stateQueue) Less(i, j int) bool {
	if sq[i].fCost != sq[j].fCost {
		return sq[i].fCost < sq[j].fCost
	}
	// Prefer states closer to the goal.
	if sq[i].hCost != sq[j].hCost {
		return sq[i].hCost < sq[j].hCost
	}
	// Equal costs resolve by insertion order so that identical inputs
	// always produce the identical path.
	return sq[i].seq < sq[j].seq
}

func (sq stateQueue) Swap(i, j int) {
	sq[i], sq[j] = sq[j], sq[i]
	sq[i].index = i
	sq[j].index = j
}

func (sq *stateQueue) Push(x interface{}) {
	n := len(*sq)
	state := x.(*searchState)
	state.index = n
	*sq = append(*sq, state)
}

func (sq *stateQueue) Pop() interface{} {
	old := *sq
	n := len(old)
	state := old[n-1]
	old[n-1] = nil // avoid memory leak
	state.index = -1
	*sq = old[0 : n-1]
	return state
}

// minExpansions bounds the search on tiny grids; larger grids get a budget
// proportional to their node count.
const minExpansions = 1000

// findGridPath runs an A* search over (node, direction) states from the
// grid's start node to its end node. Segment lengths accumulate as Euclidean
// distance and every direction change costs turnPenalty; the first move from
// the start is never penalized. The returned path carries the goal state's
// accumulated cost. The search aborts with an error once the expansion
// budget is exhausted, so termination never depends on the obstacle layout.
func findGridPath(g *gridGraph, turnPenalty float64) (core.Path, error) {
	if g.start == g.end {
		return core.Path{Points: []core.Point{g.nodes[g.start]}}, nil
	}

	end := g.nodes[g.end]
	maxExpansions := minExpansions
	if budget := len(g.nodes) * 20; budget > maxExpansions {
		maxExpansions = budget
	}

	openSet := &stateQueue{}
	heap.Init(openSet)
	best := make(map[stateKey]float64)
	seq := 0

	startState := &searchState{
		node:  g.start,
		dir:   dirNone,
		hCost: geometry.ManhattanDistance(g.nodes[g.start], end),
	}
	startState.fCost = startState.hCost
	heap.Push(openSet, startState)
	best[stateKey{g.start, dirNone}] = 0

	expansions := 0
	for openSet.Len() > 0 {
		expansions++
		if expansions > maxExpansions {
			return core.Path{}, fmt.Errorf("search exceeded %d expansions", maxExpansions)
		}

		current := heap.Pop(openSet).(*searchState)
		if current.node == g.end {
			return core.Path{Points: reconstructPath(g, current), Cost: current.gCost}, nil
		}
		if known, ok := best[stateKey{current.node, current.dir}]; ok && current.gCost > known {
			continue // stale entry superseded by a cheaper path
		}

		for _, neighbor := range g.adj[current.node] {
			dir := stepDirection(g.nodes[current.node], g.nodes[neighbor])
			cost := geometry.SegmentLength(g.nodes[current.node], g.nodes[neighbor])
			if current.dir != dirNone && current.dir != dir {
				cost += turnPenalty
			}
			gCost := current.gCost + cost

			key := stateKey{neighbor, dir}
			if prev, seen := best[key]; seen && gCost >= prev {
				continue
			}
			best[key] = gCost

			seq++
			next := &searchState{
				node:   neighbor,
				dir:    dir,
				gCost:  gCost,
				hCost:  geometry.ManhattanDistance(g.nodes[neighbor], end),
				parent: current,
				seq:    seq,
			}
			next.fCost = next.gCost + next.hCost
			heap.Push(openSet, next)
		}
	}

	return core.Path{}, fmt.Errorf("no path from node %d to node %d", g.start, g.end)
}

// stepDirection classifies the axis of the grid edge from a to b.
func stepDirection(a, b core.Point) direction {
	if a.Y == b.Y {
		return dirHorizontal
	}
	return dirVertical
}

// reconstructPath walks the predecessor chain from the goal state back to
// the start.
func reconstructPath(g *gridGraph, goal *searchState) []core.Point {
	var points []core.Point
	for s := goal; s != nil; s = s.parent {
		points = append(points, g.nodes[s.node])
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}
