// Package parser loads hypergraphs from the hyperedgelist, hMetis and
// bipartite text formats. Every format is reduced to Connect calls on a
// hypergraph.Hypergraph.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
	"github.com/gilchrisn/hypergraph-partitioner/pkg/stream"
)

// ErrMalformedLine indicates a line that does not match the selected format.
var ErrMalformedLine = errors.New("parser: malformed line")

// ErrUnknownFormat indicates an unparsable format name.
var ErrUnknownFormat = errors.New("parser: unknown format")

// Format selects the input syntax.
type Format int

const (
	// EdgeList lines read "v: e1, e2, ..." or a lone "v".
	EdgeList Format = iota
	// Hmetis starts with a "#edges #vertices" header followed by one line of
	// vertex ids per edge; edges are numbered from 0.
	Hmetis
	// Bipartite lines read "vertex edge".
	Bipartite
)

func (f Format) String() string {
	switch f {
	case EdgeList:
		return "hyperedgelist"
	case Hmetis:
		return "hmetis"
	case Bipartite:
		return "bipartite"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "hyperedgelist", "hmetis" or "bipartite".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hyperedgelist", "edgelist":
		return EdgeList, nil
	case "hmetis":
		return Hmetis, nil
	case "bipartite":
		return Bipartite, nil
	}
	return EdgeList, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseFile reads path, decompressing by extension, into a new hypergraph
// built with opts.
func ParseFile(path string, format Format, opts ...hypergraph.Option) (*hypergraph.Hypergraph, error) {
	r, err := stream.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	g := hypergraph.New(opts...)
	if err := Parse(r, format, g); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return g, nil
}

// Parse reads r in the given format and connects everything into g.
func Parse(r io.Reader, format Format, g *hypergraph.Hypergraph) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var parseLine func(line string) error
	switch format {
	case EdgeList:
		parseLine = func(line string) error { return parseEdgeListLine(line, g) }
	case Hmetis:
		parseLine = newHmetisParser(g)
	case Bipartite:
		parseLine = func(line string) error { return parseBipartiteLine(line, g) }
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func parseID(token string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(token), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", ErrMalformedLine, token)
	}
	return id, nil
}

// parseEdgeListLine handles "v: e1, e2, ..." and "v".
func parseEdgeListLine(line string, g *hypergraph.Hypergraph) error {
	head, tail, hasEdges := strings.Cut(line, ":")
	vertex, err := parseID(head)
	if err != nil {
		return err
	}
	if !hasEdges {
		g.AddVertex(vertex)
		return nil
	}

	tokens := strings.Split(tail, ",")
	edges := make([]hypergraph.EdgeID, 0, len(tokens))
	for _, token := range tokens {
		edge, err := parseID(token)
		if err != nil {
			return err
		}
		edges = append(edges, edge)
	}
	g.AddEdgeList(vertex, edges)
	return nil
}

// newHmetisParser skips the header line and numbers edges sequentially.
// Lines starting with '%' are comments.
func newHmetisParser(g *hypergraph.Hypergraph) func(string) error {
	headerSeen := false
	var nextEdge hypergraph.EdgeID

	return func(line string) error {
		if strings.HasPrefix(line, "%") {
			return nil
		}

		fields := strings.Fields(line)
		if !headerSeen {
			if len(fields) < 2 {
				return fmt.Errorf("%w: header needs edge and vertex counts", ErrMalformedLine)
			}
			for _, f := range fields[:2] {
				if _, err := parseID(f); err != nil {
					return err
				}
			}
			headerSeen = true
			return nil
		}

		vertices := make([]hypergraph.VertexID, 0, len(fields))
		for _, f := range fields {
			v, err := parseID(f)
			if err != nil {
				return err
			}
			vertices = append(vertices, v)
		}
		g.AddNodeList(nextEdge, vertices)
		nextEdge++
		return nil
	}
}

// parseBipartiteLine handles "vertex edge".
func parseBipartiteLine(line string, g *hypergraph.Hypergraph) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("%w: expected two ids, got %d fields", ErrMalformedLine, len(fields))
	}
	vertex, err := parseID(fields[0])
	if err != nil {
		return err
	}
	edge, err := parseID(fields[1])
	if err != nil {
		return err
	}
	g.Connect(vertex, edge)
	return nil
}
