package ast

import "github.com/vitte-lang/vitte-sub005/internal/source"

// Builder bundles a Tree with the session string interner so parser code
// can allocate nodes and intern identifier/literal text in one place.
type Builder struct {
	Tree    *Tree
	Strings *source.Interner
}

// NewBuilder creates a Builder over a fresh Tree, sharing strings with the
// rest of the session.
func NewBuilder(strings *source.Interner) *Builder {
	return &Builder{Tree: NewTree(), Strings: strings}
}

// Intern interns s and returns its StringID, or NoStringID for "".
func (b *Builder) Intern(s string) source.StringID {
	if s == "" {
		return source.NoStringID
	}
	return b.Strings.Intern(s)
}

// New allocates a node of the given kind and span.
func (b *Builder) New(kind Kind, span source.Span) NodeID {
	return b.Tree.Alloc(Node{Kind: kind, Span: span})
}

// Join returns the smallest span covering lo and hi (both already-built
// node spans), used by the parser to compute a nonterminal's span as
// (earliest child lo, latest child hi) per spec §4.4.
func Join(lo, hi source.Span) source.Span {
	return lo.Cover(hi)
}

// SetName interns name and stores it on the node at id.
func (b *Builder) SetName(id NodeID, name string) {
	if n := b.Tree.Node(id); n != nil {
		n.Name = b.Intern(name)
	}
}

// SetText interns text and stores it on the node at id.
func (b *Builder) SetText(id NodeID, text string) {
	if n := b.Tree.Node(id); n != nil {
		n.Text = b.Intern(text)
	}
}

// AddKid appends child to parent's Kids list and extends parent's span to
// cover it.
func (b *Builder) AddKid(parent, child NodeID) {
	n := b.Tree.Node(parent)
	if n == nil {
		return
	}
	n.Kids = append(n.Kids, child)
	if c := b.Tree.Node(child); c != nil {
		n.Span = Join(n.Span, c.Span)
	}
}

// AddAux appends child to parent's Aux list and extends parent's span to
// cover it.
func (b *Builder) AddAux(parent, child NodeID) {
	n := b.Tree.Node(parent)
	if n == nil {
		return
	}
	n.Aux = append(n.Aux, child)
	if c := b.Tree.Node(child); c != nil {
		n.Span = Join(n.Span, c.Span)
	}
}

// Extend grows parent's span to cover extra without recording it as a
// child (used for tokens consumed as part of a construct, like a closing
// delimiter).
func (b *Builder) Extend(parent NodeID, extra source.Span) {
	if n := b.Tree.Node(parent); n != nil {
		n.Span = Join(n.Span, extra)
	}
}
