package hypergraph

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// VertexID identifies a vertex. Vertex and edge ids live in independent spaces.
type VertexID = uint64

// EdgeID identifies a hyperedge.
type EdgeID = uint64

var (
	// ErrEmptyGraph is the panic value of RandomNode and AnyNode on a graph without vertices.
	ErrEmptyGraph = errors.New("hypergraph: graph has no vertices")

	// ErrAsymmetricIncidence is returned by Validate when the two incidence maps disagree.
	ErrAsymmetricIncidence = errors.New("hypergraph: asymmetric incidence")
)

// Hypergraph stores the vertex/edge incidence relation in both directions.
//
// The structure is not safe for concurrent mutation. Only the heuristic cache
// is guarded, since it is written from otherwise read-only queries.
type Hypergraph struct {
	vertices map[VertexID]*roaring64.Bitmap // vertex -> incident edges
	edges    map[EdgeID]*roaring64.Bitmap   // edge -> incident vertices

	// order holds every live vertex; position maps a vertex to its slot.
	// Together they give O(1) uniform sampling and O(1) removal.
	order    []VertexID
	position map[VertexID]int

	cache *heuristicCache
	rng   *rand.Rand
}

// Option configures a Hypergraph at construction.
type Option func(*Hypergraph)

// WithSeed seeds the generator used by RandomNode.
func WithSeed(seed int64) Option {
	return func(g *Hypergraph) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects the generator used by RandomNode.
func WithRand(rng *rand.Rand) Option {
	return func(g *Hypergraph) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// New creates an empty hypergraph. Without WithSeed or WithRand the generator
// is seeded from the clock.
func New(opts ...Option) *Hypergraph {
	g := &Hypergraph{
		vertices: make(map[VertexID]*roaring64.Bitmap),
		edges:    make(map[EdgeID]*roaring64.Bitmap),
		position: make(map[VertexID]int),
		cache:    newHeuristicCache(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// SetSeed reseeds the generator. Call it during single-threaded setup only.
func (g *Hypergraph) SetSeed(seed int64) {
	g.rng.Seed(seed)
}

// AddVertex inserts a vertex without incident edges. It reports whether the
// vertex was new.
func (g *Hypergraph) AddVertex(id VertexID) bool {
	if _, exists := g.vertices[id]; exists {
		return false
	}
	g.vertices[id] = roaring64.New()
	g.position[id] = len(g.order)
	g.order = append(g.order, id)
	return true
}

// AddEdge inserts an edge without incident vertices. It reports whether the
// edge was new.
func (g *Hypergraph) AddEdge(id EdgeID) bool {
	if _, exists := g.edges[id]; exists {
		return false
	}
	g.edges[id] = roaring64.New()
	return true
}

// Connect links vertex and edge, inserting either if absent.
func (g *Hypergraph) Connect(vertex VertexID, edge EdgeID) {
	g.AddVertex(vertex)
	g.AddEdge(edge)

	g.edges[edge].Add(vertex)
	g.vertices[vertex].Add(edge)
}

// AddEdgeList connects vertex to every edge in edgeList.
func (g *Hypergraph) AddEdgeList(vertex VertexID, edgeList []EdgeID) {
	for _, edge := range edgeList {
		g.Connect(vertex, edge)
	}
}

// AddNodeList connects every vertex in nodeList to edge.
func (g *Hypergraph) AddNodeList(edge EdgeID, nodeList []VertexID) {
	for _, vertex := range nodeList {
		g.Connect(vertex, edge)
	}
}

// EdgesOf returns the edges incident to vertex in ascending order.
// An absent vertex yields an empty slice.
func (g *Hypergraph) EdgesOf(vertex VertexID) []EdgeID {
	set, exists := g.vertices[vertex]
	if !exists {
		return []EdgeID{}
	}
	return set.ToArray()
}

// VerticesOf returns the vertices incident to edge in ascending order.
// An absent edge yields an empty slice.
func (g *Hypergraph) VerticesOf(edge EdgeID) []VertexID {
	set, exists := g.edges[edge]
	if !exists {
		return []VertexID{}
	}
	return set.ToArray()
}

// Degree returns the number of edges incident to vertex.
func (g *Hypergraph) Degree(vertex VertexID) int {
	if set, exists := g.vertices[vertex]; exists {
		return int(set.GetCardinality())
	}
	return 0
}

// EdgeSize returns the number of vertices incident to edge.
func (g *Hypergraph) EdgeSize(edge EdgeID) int {
	if set, exists := g.edges[edge]; exists {
		return int(set.GetCardinality())
	}
	return 0
}

func (g *Hypergraph) HasVertex(vertex VertexID) bool {
	_, exists := g.vertices[vertex]
	return exists
}

func (g *Hypergraph) HasEdge(edge EdgeID) bool {
	_, exists := g.edges[edge]
	return exists
}

func (g *Hypergraph) NumVertices() int { return len(g.vertices) }
func (g *Hypergraph) NumEdges() int { return len(g.edges) }
func (g *Hypergraph) IsEmpty() bool { return len(g.vertices) == 0 }

// DeleteVertex removes vertex from every incident edge. Edges left without
// vertices are removed as well. The cached heuristic of vertex is purged.
// Deleting an absent vertex is a no-op.
func (g *Hypergraph) DeleteVertex(vertex VertexID) {
	incident, exists := g.vertices[vertex]
	if !exists {
		return
	}

	it := incident.Iterator()
	for it.HasNext() {
		edge := it.Next()
		members, ok := g.edges[edge]
		if !ok {
			continue
		}
		members.Remove(vertex)
		if members.IsEmpty() {
			delete(g.edges, edge)
		}
	}

	g.cache.forget(vertex)
	delete(g.vertices, vertex)

	// swap-remove from the dense order
	idx := g.position[vertex]
	last := len(g.order) - 1
	if idx != last {
		moved := g.order[last]
		g.order[idx] = moved
		g.position[moved] = idx
	}
	g.order = g.order[:last]
	delete(g.position, vertex)
}

// RandomNode returns a uniformly chosen live vertex.
// It panics with ErrEmptyGraph when the graph has no vertices.
func (g *Hypergraph) RandomNode() VertexID {
	if len(g.order) == 0 {
		panic(ErrEmptyGraph)
	}
	return g.order[g.rng.Intn(len(g.order))]
}

// AnyNode returns some live vertex in O(1) without any uniformity guarantee.
// It panics with ErrEmptyGraph when the graph has no vertices.
func (g *Hypergraph) AnyNode() VertexID {
	if len(g.order) == 0 {
		panic(ErrEmptyGraph)
	}
	return g.order[0]
}

// Vertices returns all live vertices in insertion order, modulo deletions.
func (g *Hypergraph) Vertices() []VertexID {
	out := make([]VertexID, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all live edges in no particular order.
func (g *Hypergraph) Edges() []EdgeID {
	out := make([]EdgeID, 0, len(g.edges))
	for edge := range g.edges {
		out = append(out, edge)
	}
	return out
}

// Validate checks that both incidence maps describe the same relation.
func (g *Hypergraph) Validate() error {
	for vertex, incident := range g.vertices {
		it := incident.Iterator()
		for it.HasNext() {
			edge := it.Next()
			members, ok := g.edges[edge]
			if !ok || !members.Contains(vertex) {
				return fmt.Errorf("%w: vertex %d lists edge %d", ErrAsymmetricIncidence, vertex, edge)
			}
		}
	}
	for edge, members := range g.edges {
		if members.IsEmpty() {
			continue
		}
		it := members.Iterator()
		for it.HasNext() {
			vertex := it.Next()
			incident, ok := g.vertices[vertex]
			if !ok || !incident.Contains(edge) {
				return fmt.Errorf("%w: edge %d lists vertex %d", ErrAsymmetricIncidence, edge, vertex)
			}
		}
	}
	if len(g.order) != len(g.vertices) {
		return fmt.Errorf("%w: %d ordered vertices, %d stored", ErrAsymmetricIncidence, len(g.order), len(g.vertices))
	}
	return nil
}
