package roadgraph

import "github.com/campus-navigator/internal/domain"

type pairKey struct {
	a, b string
}

func newPairKey(x, y string) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// SegmentIndex finds the segment joining two nodes in either direction.
// Like the graph, the last segment indexed for a pair wins, so the segment
// returned for a hop is the one whose length the graph holds.
type SegmentIndex struct {
	byPair map[pairKey]domain.Segment
}

// NewSegmentIndex indexes segments by their unordered endpoint pair.
func NewSegmentIndex(segments []domain.Segment) *SegmentIndex {
	idx := &SegmentIndex{byPair: make(map[pairKey]domain.Segment, len(segments))}
	for _, s := range segments {
		if s.From == "" || s.To == "" || s.From == s.To {
			continue
		}
		idx.byPair[newPairKey(s.From, s.To)] = s
	}
	return idx
}

// Lookup returns the segment between a and b.
func (idx *SegmentIndex) Lookup(a, b string) (domain.Segment, bool) {
	if idx == nil {
		return domain.Segment{}, false
	}
	s, ok := idx.byPair[newPairKey(a, b)]
	return s, ok
}

// Len returns the number of indexed pairs.
func (idx *SegmentIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byPair)
}
