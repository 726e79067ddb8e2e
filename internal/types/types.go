// Package types interns type descriptors into a dense, hash-deduplicated
// table so type equality reduces to TypeID equality (spec §4.6).
package types

import "github.com/vitte-lang/vitte-sub005/internal/source"

// TypeID identifies a structural type descriptor.
type TypeID uint32

// NoTypeID marks the absence of a type. It is slot 0, which the interner
// fills with the KindInvalid sentinel descriptor.
const NoTypeID TypeID = 0

// Kind classifies a type descriptor's shape.
type Kind uint8

const (
	KindInvalid Kind = iota // spec §3 "error": a type slot that failed to resolve
	KindUnknown             // inference-pending: not yet assigned a concrete type
	KindUnit
	KindNothing
	KindBool
	KindInt
	KindFloat
	KindChar
	KindString
	KindNominal
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindUnit:
		return "unit"
	case KindNothing:
		return "nothing"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindNominal:
		return "nominal"
	case KindFn:
		return "fn"
	default:
		return "invalid"
	}
}

// Type is a structural type descriptor. Only the fields relevant to Kind are
// meaningful; the rest are zero.
type Type struct {
	Kind   Kind
	Name   source.StringID // KindNominal: the type's interned name
	Ret    TypeID           // KindFn: return type
	Params []TypeID         // KindFn: parameter types, in order
}
