package pathfinder

import "github.com/dragonruler/pathfinder/graph"

// discoveredNode is a search-tree entry: a reference to the underlying
// visibility-graph node, accumulated cost from the destination, the
// heuristic-adjusted estimated total cost, and a back-pointer to the
// predecessor. previous chains form a tree rooted at the destination.
type discoveredNode struct {
	node      *graph.Node
	cost      float64
	estimated float64
	previous  *discoveredNode

	index int // position in the frontier heap; -1 when not enqueued
}

// frontier is a container/heap-based indexed priority queue of
// discoveredNode, ordered by ascending estimated cost. Unlike a lazy
// "push duplicates, skip stale pops" queue, each graph node that is
// currently in the frontier has exactly one discoveredNode entry; a
// cheaper route updates that entry in place via heap.Fix.
type frontier []*discoveredNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool { return f[i].estimated < f[j].estimated }

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	n := x.(*discoveredNode)
	n.index = len(*f)
	*f = append(*f, n)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*f = old[:n-1]
	return entry
}
