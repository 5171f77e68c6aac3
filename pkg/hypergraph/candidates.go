package hypergraph

// EdgeSizeAtPercentile returns the edge size left as the maximum once the
// largest percent of edges (by vertex count) is ignored. Zero percent yields
// the largest edge size, values close to 100 the smallest. A graph without
// edges yields 0.
func (g *Hypergraph) EdgeSizeAtPercentile(percent float64) int {
	if len(g.edges) == 0 {
		return 0
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	sizes := make([]int, 0, len(g.edges))
	for _, members := range g.edges {
		sizes = append(sizes, int(members.GetCardinality()))
	}

	factor := 1 - percent/100
	k := int(float64(len(sizes)-1) * factor)
	return selectKth(sizes, k)
}

// selectKth partially orders sizes so that sizes[k] holds the k-th smallest
// value and returns it. Expected O(len(sizes)).
func selectKth(sizes []int, k int) int {
	lo, hi := 0, len(sizes)-1
	for lo < hi {
		// median of three keeps already sorted input linear
		mid := lo + (hi-lo)/2
		if sizes[mid] < sizes[lo] {
			sizes[mid], sizes[lo] = sizes[lo], sizes[mid]
		}
		if sizes[hi] < sizes[lo] {
			sizes[hi], sizes[lo] = sizes[lo], sizes[hi]
		}
		if sizes[hi] < sizes[mid] {
			sizes[hi], sizes[mid] = sizes[mid], sizes[hi]
		}
		pivot := sizes[mid]

		i, j := lo, hi
		for i <= j {
			for sizes[i] < pivot {
				i++
			}
			for sizes[j] > pivot {
				j--
			}
			if i <= j {
				sizes[i], sizes[j] = sizes[j], sizes[i]
				i++
				j--
			}
		}

		switch {
		case k <= j:
			hi = j
		case k >= i:
			lo = i
		default:
			return sizes[k]
		}
	}
	return sizes[k]
}

// SSetCandidates collects up to n neighbours of vertex, i.e. vertices sharing
// an edge with it. Neighbours behind small edges are preferred: the size
// threshold starts at 2 and doubles per pass, never admitting edges larger
// than maxEdgeSize. Collection stops as soon as n neighbours are found or a
// pass ran with the threshold at or above maxEdgeSize. The result is in
// discovery order and may hold fewer than n vertices.
func (g *Hypergraph) SSetCandidates(vertex VertexID, n, maxEdgeSize int) []VertexID {
	incident, exists := g.vertices[vertex]
	if !exists || n <= 0 {
		return []VertexID{}
	}

	found := make([]VertexID, 0, n)
	seen := make(map[VertexID]struct{}, n)

	for threshold := 2; ; threshold *= 2 {
		limit := min(threshold, maxEdgeSize)

		it := incident.Iterator()
		for it.HasNext() {
			members := g.edges[it.Next()]
			if int(members.GetCardinality()) > limit {
				continue
			}

			mit := members.Iterator()
			for mit.HasNext() {
				neighbour := mit.Next()
				if neighbour == vertex {
					continue
				}
				if _, dup := seen[neighbour]; dup {
					continue
				}
				seen[neighbour] = struct{}{}
				found = append(found, neighbour)
				if len(found) >= n {
					return found
				}
			}
		}

		if threshold >= maxEdgeSize {
			break
		}
	}

	return found
}
