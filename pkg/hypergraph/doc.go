// Package hypergraph provides the dual-indexed incidence structure consumed by
// the streaming partitioner.
//
// Every association between a vertex and a hyperedge is created through
// Connect, which keeps the vertex->edges and edge->vertices maps symmetric.
// Incidence sets are roaring bitmaps, so iteration order is ascending and
// deterministic. The structure is a consumable working set: the partitioner
// deletes vertices as it assigns them and edges disappear with their last
// vertex.
//
// Heuristic values are memoised in an approximation cache that is allowed to
// go stale, see HeuristicEstimate.
package hypergraph
