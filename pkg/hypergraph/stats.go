package hypergraph

// Stats summarises the shape of a hypergraph.
type Stats struct {
	NumVertices      int     `json:"num_vertices"`
	NumEdges         int     `json:"num_edges"`
	Pins             int     `json:"pins"` // sum of all edge sizes
	MinEdgeSize      int     `json:"min_edge_size"`
	MaxEdgeSize      int     `json:"max_edge_size"`
	MeanEdgeSize     float64 `json:"mean_edge_size"`
	IsolatedVertices int     `json:"isolated_vertices"`
}

// Stats computes size statistics in one pass over both incidence maps.
func (g *Hypergraph) Stats() Stats {
	s := Stats{
		NumVertices: len(g.vertices),
		NumEdges:    len(g.edges),
	}

	first := true
	for _, members := range g.edges {
		size := int(members.GetCardinality())
		s.Pins += size
		if first || size < s.MinEdgeSize {
			s.MinEdgeSize = size
		}
		if first || size > s.MaxEdgeSize {
			s.MaxEdgeSize = size
		}
		first = false
	}
	if s.NumEdges > 0 {
		s.MeanEdgeSize = float64(s.Pins) / float64(s.NumEdges)
	}

	for _, incident := range g.vertices {
		if incident.IsEmpty() {
			s.IsolatedVertices++
		}
	}
	return s
}
