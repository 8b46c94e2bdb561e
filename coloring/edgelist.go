package coloring

// EdgeList is the plainest Graph: N vertices and a slice of endpoint pairs.
type EdgeList struct {
	N     int
	Pairs [][2]int
}

// FromEdges builds an EdgeList whose vertex count is one more than the
// largest endpoint index (0 for no pairs).
func FromEdges(pairs ...[2]int) EdgeList {
	n := 0
	for _, p := range pairs {
		n = max(n, p[0]+1, p[1]+1)
	}

	return EdgeList{N: n, Pairs: pairs}
}

// VertexCount implements Graph.
func (l EdgeList) VertexCount() int { return l.N }

// EachEdge implements Graph.
func (l EdgeList) EachEdge(fn func(u, v int) bool) {
	for _, p := range l.Pairs {
		if !fn(p[0], p[1]) {
			return
		}
	}
}
