// Package ast defines the single generic node representation shared by the
// core and phrase parser surfaces (spec §3, §4.4, §9): one tagged struct
// with three typed child slots plus ordered/auxiliary child lists, stored in
// a 1-based arena so ids stay stable and storage stays contiguous.
package ast

import (
	"github.com/vitte-lang/vitte-sub005/internal/arena"
	"github.com/vitte-lang/vitte-sub005/internal/source"
)

// NodeID is a 1-based handle into a Tree's node arena. The zero value means
// "no node".
type NodeID = arena.ID

// NoNodeID marks the absence of a node reference.
const NoNodeID NodeID = 0

// Kind enumerates every node variant produced by either parser surface.
type Kind uint16

const (
	KindInvalid Kind = iota
	KindErrorNode // inserted by parser recovery; spec §4.4 "Recoverable"

	// Top-level items (core surface).
	KindFile
	KindModule
	KindUse
	KindUsePathSeg
	KindExport
	KindFn
	KindFnParam
	KindEntrypoint // tagged by I64 with which entrypoint keyword was used
	KindScn

	// Statements (core surface).
	KindBlock
	KindLet
	KindIf
	KindElifArm
	KindWhile
	KindFor
	KindMatch
	KindMatchArm
	KindReturn
	KindBreak
	KindContinue
	KindExprStmt

	// Expressions (core surface).
	KindIdent
	KindIntLit
	KindUintLit
	KindFloatLit
	KindBoolLit
	KindStringLit
	KindCharLit
	KindNothingLit
	KindGroup
	KindBinary
	KindUnary
	KindCall
	KindCallArg
	KindIndex
	KindMember

	// Phrase surface sugar (spec §4.4, §9).
	KindPMod
	KindPUse
	KindPProg
	KindPSet
	KindPSay
	KindPDo
	KindPRet
	KindPWhen
	KindPWhenArm // A=cond, B=block; I64 != 0 marks this the else/default arm
	KindPLoop
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid", KindErrorNode: "error",
	KindFile: "file", KindModule: "module", KindUse: "use",
	KindUsePathSeg: "use_path_seg", KindExport: "export", KindFn: "fn",
	KindFnParam: "fn_param", KindEntrypoint: "entrypoint", KindScn: "scn",
	KindBlock: "block", KindLet: "let", KindIf: "if", KindElifArm: "elif_arm",
	KindWhile: "while", KindFor: "for", KindMatch: "match", KindMatchArm: "match_arm",
	KindReturn: "return", KindBreak: "break", KindContinue: "continue",
	KindExprStmt: "expr_stmt",
	KindIdent: "ident", KindIntLit: "int_lit", KindUintLit: "uint_lit",
	KindFloatLit: "float_lit", KindBoolLit: "bool_lit", KindStringLit: "string_lit",
	KindCharLit: "char_lit", KindNothingLit: "nothing_lit", KindGroup: "group",
	KindBinary: "binary", KindUnary: "unary", KindCall: "call", KindCallArg: "call_arg",
	KindIndex: "index", KindMember: "member",
	KindPMod: "p_mod", KindPUse: "p_use", KindPProg: "p_prog", KindPSet: "p_set",
	KindPSay: "p_say", KindPDo: "p_do", KindPRet: "p_ret", KindPWhen: "p_when",
	KindPWhenArm: "p_when_arm", KindPLoop: "p_loop",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Node is the single generic AST node representation (spec §3): a kind tag,
// a span, optional interned name/text, three typed child slots used
// differently per kind (e.g. condition/then/else for If), numeric literal
// payloads, and two ordered child-id lists (primary children, and a
// secondary "aux" list for things like trailing attributes or extra match
// arms).
type Node struct {
	Kind Kind
	Span source.Span

	Name source.StringID // identifier/keyword text, if any
	Text source.StringID // raw literal text, if any

	A, B, C NodeID // kind-specific slots, e.g. If: A=cond, B=then, C=else

	I64 int64
	F64 float64

	Kids []NodeID
	Aux  []NodeID
}

// Tree owns the node arena for one parse session.
type Tree struct {
	nodes *arena.Arena[Node]
}

// NewTree creates an empty node tree.
func NewTree() *Tree {
	return &Tree{nodes: arena.New[Node](256)}
}

// Alloc appends n to the arena and returns its id.
func (t *Tree) Alloc(n Node) NodeID { return t.nodes.Alloc(n) }

// Node returns a pointer to the node at id, or nil for NoNodeID. The
// pointer may be used to patch a forward slot (e.g. filling in a loop
// body after the header was allocated) but callers must never store ids
// that are >= the id of the node referencing them, except through such an
// explicit patch (spec §3 invariant: no cycles).
func (t *Tree) Node(id NodeID) *Node { return t.nodes.Get(id) }

// Len returns the number of allocated nodes.
func (t *Tree) Len() NodeID { return t.nodes.Len() }

// CoveringSpan computes a node's span as the cover of its own recorded span
// with every child in Kids and Aux — used by tests asserting the "span
// coverage" property from spec §8. In practice the parser already joins spans
// as it builds nodes (see Join in builder.go); this is a verification helper.
func (t *Tree) CoveringSpan(id NodeID) source.Span {
	n := t.Node(id)
	if n == nil {
		return source.Span{}
	}
	s := n.Span
	for _, kid := range n.Kids {
		if c := t.Node(kid); c != nil {
			s = s.Cover(c.Span)
		}
	}
	for _, kid := range n.Aux {
		if c := t.Node(kid); c != nil {
			s = s.Cover(c.Span)
		}
	}
	return s
}
