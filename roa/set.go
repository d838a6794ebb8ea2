// Fichier: roa/set.go

package roa

import (
	"iter"

	"github.com/google/btree"
)

// btreeDegree is the B-tree fan-out. Inputs reach tens of thousands of
// entries, for which a moderate degree keeps nodes cache friendly.
const btreeDegree = 32

// InsertResult tells whether Set.Insert stored the prefix.
type InsertResult int

const (
	Inserted InsertResult = iota
	Duplicate
)

func (r InsertResult) String() string {
	if r == Duplicate {
		return "duplicate"
	}
	return "inserted"
}

// Set holds unique prefixes in canonical order. A Set is owned by a single
// run and is not safe for concurrent use.
type Set struct {
	tree *btree.BTreeG[Prefix]
}

// NewSet creates an empty Set ordered by Compare.
func NewSet() *Set {
	return &Set{tree: btree.NewG(btreeDegree, Less)}
}

// Insert adds p unless an equal prefix is already held. On Duplicate the
// existing element is kept and p is discarded.
func (s *Set) Insert(p Prefix) InsertResult {
	if s.tree.Has(p) {
		return Duplicate
	}
	s.tree.ReplaceOrInsert(p)
	return Inserted
}

// Len returns the number of prefixes held.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Drain returns a single-pass sequence over the held prefixes in ascending
// canonical order. Each prefix is removed from the set as it is yielded, so
// a fully consumed sequence leaves the set empty. Stopping early leaves the
// remaining prefixes in place.
func (s *Set) Drain() iter.Seq[Prefix] {
	return func(yield func(Prefix) bool) {
		for {
			p, ok := s.tree.DeleteMin()
			if !ok {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}
