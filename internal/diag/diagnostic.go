package diag

import "github.com/vitte-lang/vitte-sub005/internal/source"

// LabelStyle distinguishes the one mandatory primary label from any number
// of secondary labels on a Diagnostic.
type LabelStyle uint8

const (
	LabelPrimary LabelStyle = iota
	LabelSecondary
)

// Label attaches a span (and optional message) to a Diagnostic. Exactly one
// label per Diagnostic has Style == LabelPrimary.
type Label struct {
	Style   LabelStyle
	Span    source.Span
	Message string
}

// Diagnostic is a single issue surfaced by any compiler phase.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Label
	Labels   []Label // secondary labels only
	Notes    []string
	Help     string
}

func (d Diagnostic) withLabel(l Label) Diagnostic {
	if l.Style == LabelPrimary {
		d.Primary = l
		return d
	}
	d.Labels = append(d.Labels, l)
	return d
}

// WithSecondaryLabel appends a secondary label to the diagnostic.
func (d Diagnostic) WithSecondaryLabel(span source.Span, msg string) Diagnostic {
	return d.withLabel(Label{Style: LabelSecondary, Span: span, Message: msg})
}

// WithNote appends a freestanding note line.
func (d Diagnostic) WithNote(text string) Diagnostic {
	d.Notes = append(d.Notes, text)
	return d
}

// WithHelp sets the diagnostic's single help line.
func (d Diagnostic) WithHelp(text string) Diagnostic {
	d.Help = text
	return d
}

// PrimarySpan is a convenience accessor for d.Primary.Span.
func (d Diagnostic) PrimarySpan() source.Span { return d.Primary.Span }
