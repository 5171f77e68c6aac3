package partitioning

import (
	"fmt"
	"strings"
)

// HeuristicMode selects how the secondary set scores its members.
type HeuristicMode int

const (
	// Cached scores with the memoised, possibly stale estimate.
	Cached HeuristicMode = iota
	// Exact recomputes the heuristic on every query.
	Exact
)

func (m HeuristicMode) String() string {
	switch m {
	case Cached:
		return "cached"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("HeuristicMode(%d)", int(m))
	}
}

// ParseHeuristicMode accepts "cached" or "exact".
func ParseHeuristicMode(s string) (HeuristicMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cached":
		return Cached, nil
	case "exact":
		return Exact, nil
	}
	return Cached, fmt.Errorf("%w: %q", ErrUnknownHeuristicMode, s)
}

// SelectionMode selects the fallback used when the secondary set is empty.
type SelectionMode int

const (
	// TrulyRandom falls back to a uniformly random live vertex.
	TrulyRandom SelectionMode = iota
	// NextBest falls back to whichever live vertex is cheapest to reach.
	NextBest
)

func (m SelectionMode) String() string {
	switch m {
	case TrulyRandom:
		return "random"
	case NextBest:
		return "next-best"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// ParseSelectionMode accepts "random" or "next-best" (also "truly-random" and "nextbest").
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "truly-random", "trulyrandom":
		return TrulyRandom, nil
	case "next-best", "nextbest":
		return NextBest, nil
	}
	return TrulyRandom, fmt.Errorf("%w: %q", ErrUnknownSelectionMode, s)
}

// Pick records which path produced a vertex from SecondarySet.NextNode.
type Pick int

const (
	PickHeuristic Pick = iota
	PickRandom
	PickNextBest
)

func (p Pick) String() string {
	switch p {
	case PickHeuristic:
		return "heuristic"
	case PickRandom:
		return "random"
	case PickNextBest:
		return "next-best"
	default:
		return fmt.Sprintf("Pick(%d)", int(p))
	}
}
