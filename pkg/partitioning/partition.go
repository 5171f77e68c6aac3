package partitioning

import (
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
)

// Partition accumulates the vertices assigned to one part and every edge
// they touch. It only grows.
type Partition struct {
	id    int
	nodes *roaring64.Bitmap
	edges *roaring64.Bitmap
}

// NewPartition creates an empty partition with the given 0-based id.
func NewPartition(id int) *Partition {
	return &Partition{
		id:    id,
		nodes: roaring64.New(),
		edges: roaring64.New(),
	}
}

func (p *Partition) ID() int { return p.id }

// AddNode inserts vertex and unions its incident edges into the edge set.
// Membership in other partitions is not checked.
func (p *Partition) AddNode(vertex hypergraph.VertexID, edges []hypergraph.EdgeID) {
	p.nodes.Add(vertex)
	p.edges.AddMany(edges)
}

func (p *Partition) HasEdge(edge hypergraph.EdgeID) bool { return p.edges.Contains(edge) }
func (p *Partition) HasNode(vertex hypergraph.VertexID) bool { return p.nodes.Contains(vertex) }
func (p *Partition) NumberOfNodes() int { return int(p.nodes.GetCardinality()) }
func (p *Partition) NumberOfEdges() int { return int(p.edges.GetCardinality()) }

// Nodes returns the assigned vertices in ascending order.
func (p *Partition) Nodes() []hypergraph.VertexID { return p.nodes.ToArray() }

// Edges returns the touched edges in ascending order.
func (p *Partition) Edges() []hypergraph.EdgeID { return p.edges.ToArray() }

// ExternalDegree counts the edges of p that also appear in at least one
// other partition of all. Each edge contributes at most once.
func (p *Partition) ExternalDegree(all []*Partition) int {
	degree := 0
	it := p.edges.Iterator()
	for it.HasNext() {
		edge := it.Next()
		for _, other := range all {
			if other == p {
				continue
			}
			if other.HasEdge(edge) {
				degree++
				break
			}
		}
	}
	return degree
}

// String lists the partition id followed by one node per line.
func (p *Partition) String() string {
	var b strings.Builder
	b.WriteString("id:")
	b.WriteString(strconv.Itoa(p.id))
	b.WriteString("\nnodes:\n")
	it := p.nodes.Iterator()
	for it.HasNext() {
		b.WriteString(strconv.FormatUint(it.Next(), 10))
		b.WriteByte('\n')
	}
	return b.String()
}
