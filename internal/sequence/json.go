package sequence

import json "github.com/goccy/go-json"

// Entry is one (rank, element) pair of a snapshot.
type Entry[E any] struct {
	Rank    int `json:"rank"`
	Element E   `json:"element"`
}

// Snapshot copies the current (rank, element) pairs in rank order.
func (s *Sequence[E]) Snapshot() []Entry[E] {
	entries := make([]Entry[E], 0, s.Size())
	for i := 0; i < s.Size(); i++ {
		n, _ := s.items.Get(i)
		entries = append(entries, Entry[E]{Rank: n.rank, Element: n.element})
	}
	return entries
}

// MarshalJSON encodes the snapshot as a JSON array of {"rank","element"} objects.
func (s *Sequence[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}
