package source

import (
	"fmt"
	"hash/fnv"

	"fortio.org/safecast"

	"github.com/vitte-lang/vitte-sub005/internal/arena"
)

// StringID is an opaque handle to an interned string, comparable by
// identity: two Intern calls with byte-equal input return the same ID
// within one Interner.
type StringID uint32

// NoStringID marks the absence of an interned string.
const NoStringID StringID = 0

type entry struct {
	bytes []byte
	hash  uint64
}

// Interner canonicalizes byte sequences into dense, stable StringIDs. It
// indexes them in a Go map keyed by the interned string — the map key is the
// string view over arena-owned bytes, so equal content always
// hashes and compares equal regardless of which caller's buffer it came
// from. The backing bytes live in an arena.Bytes bound to the owning
// session; disposing the session frees them as a unit (spec §4.1).
//
// Not safe for concurrent use without external synchronization — a single
// compile session is confined to one goroutine (spec §5).
type Interner struct {
	arena *arena.Bytes
	byID  []entry
	index map[string]StringID
}

// NewInterner creates an interner with the NoStringID slot pre-populated.
func NewInterner() *Interner {
	return &Interner{
		arena: arena.NewBytes(),
		byID:  []entry{{}},
		index: map[string]StringID{"": NoStringID},
	}
}

func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Intern inserts s if not already present and returns its StringID. Two
// calls with equal byte content return the same ID (the interning
// idempotence property from spec §8).
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	copied := in.arena.Copy(s)
	str := string(copied)
	n, err := safecast.Conv[uint32](len(in.byID))
	if err != nil {
		panic(fmt.Errorf("interner: id overflow: %w", err))
	}
	id := StringID(n)
	in.byID = append(in.byID, entry{bytes: copied, hash: fnv1a64(str)})
	in.index[str] = id
	return id
}

// InternBytes is a convenience wrapper over Intern for []byte input.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) if id is out of range.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) < 0 || int(id) >= len(in.byID) {
		return "", false
	}
	return string(in.byID[id].bytes), true
}

// MustLookup returns the string for id and panics if id is invalid.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}

// Len returns the number of interned strings, including the NoStringID slot.
func (in *Interner) Len() int { return len(in.byID) }
