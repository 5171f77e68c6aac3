package partitioning

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
)

// SelectionEvent describes one committed vertex.
type SelectionEvent struct {
	Step       int                 `json:"step"`
	Partition  int                 `json:"partition"`
	Node       hypergraph.VertexID `json:"node"`
	Pick       string              `json:"pick"`
	Heuristic  float64             `json:"heuristic"`
	Candidates int                 `json:"candidates"`
	SSetSize   int                 `json:"sset_size"`
	Timestamp  int64               `json:"timestamp"`
}

// SelectionTracker writes one JSON line per committed vertex. A nil tracker
// discards everything.
type SelectionTracker struct {
	file    *os.File
	encoder *json.Encoder
	err     error
}

// NewSelectionTracker creates filename and returns a tracker writing to it.
func NewSelectionTracker(filename string) (*SelectionTracker, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create selection tracking file: %w", err)
	}

	return &SelectionTracker{
		file:    file,
		encoder: json.NewEncoder(file),
	}, nil
}

// LogSelection records an event. The first write error is kept and reported
// by Close.
func (st *SelectionTracker) LogSelection(event SelectionEvent) {
	if st == nil || st.err != nil {
		return
	}
	event.Timestamp = time.Now().Unix()
	st.err = st.encoder.Encode(event)
}

// Close flushes the file and reports the first error seen.
func (st *SelectionTracker) Close() error {
	if st == nil || st.file == nil {
		return nil
	}
	closeErr := st.file.Close()
	if st.err != nil {
		return st.err
	}
	return closeErr
}
