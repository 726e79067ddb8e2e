package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/vitte-lang/vitte-sub005/internal/source"
)

// HumanOptions configures RenderHuman. A zero value renders uncolored,
// plain ASCII output (spec §4.2: "Lines without color codes by default").
type HumanOptions struct {
	// Color, if non-nil, is used to highlight the severity tag and the
	// caret underline. Left nil, rendering stays plain.
	Color *color.Color
}

// RenderHuman writes each diagnostic in the human-readable form described in
// spec §4.2: a one-line header, a source window with caret underlines under
// the primary span, indented secondary-label notes, then help/notes.
func RenderHuman(w io.Writer, diags []Diagnostic, fs *source.FileSet, opts HumanOptions) {
	for i, d := range diags {
		renderOneHuman(w, d, fs, opts)
		if i < len(diags)-1 {
			_, _ = io.WriteString(w, "\n")
		}
	}
}

func renderOneHuman(w io.Writer, d Diagnostic, fs *source.FileSet, opts HumanOptions) {
	sev := d.Severity.String()
	if opts.Color != nil {
		sev = opts.Color.Sprint(sev)
	}
	fmt.Fprintf(w, "%s[%s]: %s\n", sev, d.Code.ID(), d.Message)

	f := fs.Get(d.Primary.Span.File)
	start, _ := fs.Resolve(d.Primary.Span)
	fmt.Fprintf(w, "  --> %s:%d:%d\n", f.FormatPath("relative", fs.BaseDir()), start.Line, start.Col)

	writeSourceWindow(w, fs, d.Primary.Span, opts)

	for _, l := range d.Labels {
		lf := fs.Get(l.Span.File)
		ls, _ := fs.Resolve(l.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d", lf.FormatPath("relative", fs.BaseDir()), ls.Line, ls.Col)
		if l.Message != "" {
			fmt.Fprintf(w, ": %s", l.Message)
		}
		fmt.Fprintln(w)
	}

	if d.Help != "" {
		fmt.Fprintf(w, "  help: %s\n", d.Help)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "  note: %s\n", n)
	}
}

func writeSourceWindow(w io.Writer, fs *source.FileSet, span source.Span, opts HumanOptions) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "   %d | %s\n", start.Line, line)

	caretLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		caretLen = int(end.Col - start.Col)
	}
	prefix := runewidth.StringWidth(prefixRunes(line, int(start.Col)-1))
	pad := strings.Repeat(" ", prefix)
	carets := strings.Repeat("^", caretLen)
	if opts.Color != nil {
		carets = opts.Color.Sprint(carets)
	}
	fmt.Fprintf(w, "     %s%s\n", pad, carets)
}

func prefixRunes(line string, n int) string {
	r := []rune(line)
	if n < 0 {
		return ""
	}
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}
