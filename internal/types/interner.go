package types

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Builtins holds TypeIDs for the language's primitive types, interned once
// at NewInterner time so callers never re-intern them.
type Builtins struct {
	Unknown TypeID // inference-pending placeholder, never a final expression type
	Unit    TypeID
	Nothing TypeID
	Bool    TypeID
	Int     TypeID
	Float   TypeID
	Char    TypeID
	String  TypeID
}

// Interner deduplicates Type descriptors into a dense []Type table keyed by
// a canonical string encoding of their structural shape.
type Interner struct {
	types    []Type
	index    map[string]TypeID
	builtins Builtins
}

// NewInterner constructs an interner pre-seeded with builtin primitives.
func NewInterner() *Interner {
	in := &Interner{index: make(map[string]TypeID, 64)}
	in.types = append(in.types, Type{Kind: KindInvalid}) // slot 0: NoTypeID/invalid
	in.builtins.Unknown = in.Intern(Type{Kind: KindUnknown})
	in.builtins.Unit = in.Intern(Type{Kind: KindUnit})
	in.builtins.Nothing = in.Intern(Type{Kind: KindNothing})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat})
	in.builtins.Char = in.Intern(Type{Kind: KindChar})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	return in
}

// Builtins returns the interner's preinterned primitive TypeIDs.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern ensures t has a stable TypeID, allocating one on first sight.
func (in *Interner) Intern(t Type) TypeID {
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(err)
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[key] = id
	return id
}

// InternFn interns a function type with the given return and parameter
// types; the key is (ret, params...) per spec §4.6.
func (in *Interner) InternFn(ret TypeID, params []TypeID) TypeID {
	return in.Intern(Type{Kind: KindFn, Ret: ret, Params: append([]TypeID(nil), params...)})
}

// Lookup returns the descriptor for id, or false if id is out of range.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics if id is invalid; callers use it once id provenance is
// already trusted (e.g. a TypeID read back from the same interner).
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// Len reports the number of interned descriptors, including the invalid
// sentinel at slot 0.
func (in *Interner) Len() int { return len(in.types) }

// typeKey renders a canonical, collision-free string encoding of t's shape
// so that structurally equal types always hash identically.
func typeKey(t Type) string {
	var b strings.Builder
	b.WriteByte(byte(t.Kind))
	b.WriteByte(':')
	switch t.Kind {
	case KindNominal:
		b.WriteString(strconv.FormatUint(uint64(t.Name), 10))
	case KindFn:
		b.WriteString(strconv.FormatUint(uint64(t.Ret), 10))
		for _, p := range t.Params {
			b.WriteByte(',')
			b.WriteString(strconv.FormatUint(uint64(p), 10))
		}
	}
	return b.String()
}
