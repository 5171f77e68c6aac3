package hypergraph

import "sync"

// heuristicCache memoises heuristic values per vertex.
//
// It is an approximation cache: entries are only dropped when their own vertex
// is deleted, so values go stale as neighbours disappear.
type heuristicCache struct {
	mu     sync.Mutex
	values map[VertexID]float64
}

func newHeuristicCache() *heuristicCache {
	return &heuristicCache{values: make(map[VertexID]float64)}
}

func (c *heuristicCache) get(vertex VertexID) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[vertex]
	return v, ok
}

func (c *heuristicCache) put(vertex VertexID, value float64) {
	c.mu.Lock()
	c.values[vertex] = value
	c.mu.Unlock()
}

func (c *heuristicCache) forget(vertex VertexID) {
	c.mu.Lock()
	delete(c.values, vertex)
	c.mu.Unlock()
}

func (c *heuristicCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

// HeuristicExact returns the mean of (|e| - 1) over the edges incident to
// vertex. Lower values mark vertices sitting in small, private edges.
// A vertex without incident edges scores 0.
func (g *Hypergraph) HeuristicExact(vertex VertexID) float64 {
	incident, exists := g.vertices[vertex]
	if !exists || incident.IsEmpty() {
		return 0
	}

	var excess uint64
	it := incident.Iterator()
	for it.HasNext() {
		excess += g.edges[it.Next()].GetCardinality() - 1
	}
	return float64(excess) / float64(incident.GetCardinality())
}

// HeuristicEstimate returns the cached heuristic of vertex, computing and
// caching HeuristicExact on a miss. Cached values are not refreshed when
// neighbouring vertices are deleted.
func (g *Hypergraph) HeuristicEstimate(vertex VertexID) float64 {
	if v, ok := g.cache.get(vertex); ok {
		return v
	}
	v := g.HeuristicExact(vertex)
	g.cache.put(vertex, v)
	return v
}

// CachedHeuristics returns the number of memoised heuristic values.
func (g *Hypergraph) CachedHeuristics() int {
	return g.cache.len()
}
