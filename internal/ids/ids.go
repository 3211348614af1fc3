// Package ids generates opaque identifiers for transactions and categories.
package ids

import (
	"strconv"

	"github.com/google/uuid"
)

// ID prefixes.
const (
	TransactionPrefix = "txn"
	CategoryPrefix    = "cat"
)

// Generator produces a fresh identifier for the given prefix.
type Generator interface {
	New(prefix string) string
}

// UUID generates "<prefix>-<uuid v4>" identifiers.
type UUID struct{}

// New returns a random identifier.
func (UUID) New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Sequence generates "<prefix>-1", "<prefix>-2", ... per prefix.
// Deterministic; intended for tests.
type Sequence struct {
	next map[string]int
}

// New returns the next identifier for prefix.
func (s *Sequence) New(prefix string) string {
	if s.next == nil {
		s.next = make(map[string]int)
	}
	s.next[prefix]++
	return prefix + "-" + strconv.Itoa(s.next[prefix])
}
