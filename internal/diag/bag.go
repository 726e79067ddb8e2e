package diag

import "sort"

// DiagHandle identifies a diagnostic already pushed into a Bag, so callers
// can attach further labels/notes after the initial push.
type DiagHandle int

// noHandle is returned when a push fails because the bag is poisoned.
const noHandle DiagHandle = -1

// Bag is the append-only collection of diagnostics for one compile session.
// It is not safe for concurrent use (spec §5: session state is confined to
// one goroutine).
type Bag struct {
	items   []Diagnostic
	poisoned bool
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag { return &Bag{} }

// Push appends a diagnostic with a single primary label and returns a
// handle for further mutation. If the bag is poisoned (spec §4.2: an
// internal allocation failure already occurred), Push drops the diagnostic
// and returns noHandle without panicking.
func (b *Bag) Push(sev Severity, code Code, primary Label, msg string) DiagHandle {
	if b.poisoned {
		return noHandle
	}
	if primary.Style != LabelPrimary {
		primary.Style = LabelPrimary
	}
	b.items = append(b.items, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	})
	return DiagHandle(len(b.items) - 1)
}

// Add appends an already-built Diagnostic.
func (b *Bag) Add(d Diagnostic) DiagHandle {
	if b.poisoned {
		return noHandle
	}
	b.items = append(b.items, d)
	return DiagHandle(len(b.items) - 1)
}

// AddLabel appends a secondary label to the diagnostic at handle. Refuses a
// second primary label (spec §4.2): style is forced to secondary.
func (b *Bag) AddLabel(h DiagHandle, style LabelStyle, l Label) {
	if h < 0 || int(h) >= len(b.items) {
		return
	}
	if style == LabelPrimary {
		style = LabelSecondary
	}
	l.Style = style
	b.items[h].Labels = append(b.items[h].Labels, l)
}

// AddNote appends a note to the diagnostic at handle.
func (b *Bag) AddNote(h DiagHandle, text string) {
	if h < 0 || int(h) >= len(b.items) {
		return
	}
	b.items[h].Notes = append(b.items[h].Notes, text)
}

// SetHelp sets the help line on the diagnostic at handle.
func (b *Bag) SetHelp(h DiagHandle, text string) {
	if h < 0 || int(h) >= len(b.items) {
		return
	}
	b.items[h].Help = text
}

// Poison marks the bag as poisoned after an unrecoverable internal failure.
// The last-pushed diagnostic (if any) is dropped, matching spec §4.2:
// "the last diagnostic is dropped and the session is marked poisoned".
func (b *Bag) Poison() {
	if len(b.items) > 0 {
		b.items = b.items[:len(b.items)-1]
	}
	b.poisoned = true
}

// Poisoned reports whether the bag has been poisoned.
func (b *Bag) Poisoned() bool { return b.poisoned }

// HasErrors reports whether any diagnostic has SevError or higher.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has SevWarning or higher.
func (b *Bag) HasWarnings() bool {
	for _, d := range b.items {
		if d.Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics currently in the bag.
func (b *Bag) Len() int { return len(b.items) }

// Items returns a read-only view of the bag's diagnostics. Callers must not
// mutate the returned slice's backing array.
func (b *Bag) Items() []Diagnostic { return b.items }

// SortByLocation stably sorts diagnostics by
// (file, lo, hi, severity desc, code asc, insertion index), matching spec
// §3's tuple exactly. sort.SliceStable preserves insertion order on ties,
// which is itself part of the contract (spec §8 "Diagnostic ordering
// stability").
func (b *Bag) SortByLocation() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		pi, pj := di.Primary.Span, dj.Primary.Span
		if pi.File != pj.File {
			return pi.File < pj.File
		}
		if pi.Start != pj.Start {
			return pi.Start < pj.Start
		}
		if pi.End != pj.End {
			return pi.End < pj.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
