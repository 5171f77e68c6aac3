package partitioning

import (
	"sort"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
)

// goodEnough is the heuristic value at or below which a member is picked
// without looking at the rest of the set.
const goodEnough = 1.0

// SecondarySet is the bounded pool of candidate vertices feeding the greedy
// loop. It holds no reference to the hypergraph; the caller passes the live
// graph into every call that needs scores.
type SecondarySet struct {
	maxSize   int
	heuristic HeuristicMode
	selection SelectionMode

	// members ordered by (score, id) as of the last AddNodes
	members []hypergraph.VertexID
}

// NewSecondarySet creates an empty set holding at most maxSize vertices.
func NewSecondarySet(maxSize int, heuristic HeuristicMode, selection SelectionMode) *SecondarySet {
	if maxSize < 0 {
		maxSize = 0
	}
	return &SecondarySet{
		maxSize:   maxSize,
		heuristic: heuristic,
		selection: selection,
		members:   make([]hypergraph.VertexID, 0, maxSize),
	}
}

func (s *SecondarySet) score(g *hypergraph.Hypergraph, v hypergraph.VertexID) float64 {
	if s.heuristic == Exact {
		return g.HeuristicExact(v)
	}
	return g.HeuristicEstimate(v)
}

// AddNodes merges candidates into the set, rescores every member and keeps
// the maxSize lowest scoring vertices. Vertices no longer in g are dropped.
func (s *SecondarySet) AddNodes(g *hypergraph.Hypergraph, candidates []hypergraph.VertexID) {
	type scored struct {
		vertex hypergraph.VertexID
		score  float64
	}

	seen := make(map[hypergraph.VertexID]struct{}, len(s.members)+len(candidates))
	pool := make([]scored, 0, len(s.members)+len(candidates))

	for _, group := range [][]hypergraph.VertexID{s.members, candidates} {
		for _, v := range group {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !g.HasVertex(v) {
				continue
			}
			pool = append(pool, scored{vertex: v, score: s.score(g, v)})
		}
	}

	sort.Slice(pool, func(i, j int) bool {
		if pool[i].score != pool[j].score {
			return pool[i].score < pool[j].score
		}
		return pool[i].vertex < pool[j].vertex
	})

	keep := min(len(pool), s.maxSize)
	s.members = s.members[:0]
	for _, entry := range pool[:keep] {
		s.members = append(s.members, entry.vertex)
	}
}

// MinElement returns the best member: the first one scoring at most 1, or
// else the lowest scoring one. ok is false when the set is empty.
func (s *SecondarySet) MinElement(g *hypergraph.Hypergraph) (v hypergraph.VertexID, ok bool) {
	best := 0.0
	for _, member := range s.members {
		score := s.score(g, member)
		if score <= goodEnough {
			return member, true
		}
		if !ok || score < best {
			v, best, ok = member, score, true
		}
	}
	return v, ok
}

// NextNode returns the vertex to assign next. When the set is empty it falls
// back to the graph according to the selection mode, which requires g to be
// non-empty.
func (s *SecondarySet) NextNode(g *hypergraph.Hypergraph) (hypergraph.VertexID, Pick) {
	if v, ok := s.MinElement(g); ok {
		return v, PickHeuristic
	}
	if s.selection == NextBest {
		return g.AnyNode(), PickNextBest
	}
	return g.RandomNode(), PickRandom
}

// RemoveNode removes v if present.
func (s *SecondarySet) RemoveNode(v hypergraph.VertexID) {
	for i, member := range s.members {
		if member == v {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return
		}
	}
}

// Len returns the number of members.
func (s *SecondarySet) Len() int { return len(s.members) }

// Members returns a copy of the members in score order.
func (s *SecondarySet) Members() []hypergraph.VertexID {
	out := make([]hypergraph.VertexID, len(s.members))
	copy(out, s.members)
	return out
}
