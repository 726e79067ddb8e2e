package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vitte-lang/vitte-sub005/internal/source"
)

type goldenEntry struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Col      uint32
	Message  string
}

// GoldenString renders diagnostics into a stable, single-line-per-entry
// form suitable for snapshot comparisons in driver-level tests. Grounded on
// surge's diag.FormatGoldenDiagnostics.
func GoldenString(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	entries := make([]goldenEntry, 0, len(diags))
	for _, d := range diags {
		f := fs.Get(d.Primary.Span.File)
		start, _ := fs.Resolve(d.Primary.Span)
		entries = append(entries, goldenEntry{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     normalizeGoldenPath(f.FormatPath("relative", fs.BaseDir())),
			Line:     start.Line,
			Col:      start.Col,
			Message:  sanitizeGolden(d.Message),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		if a.Severity != b.Severity {
			return a.Severity < b.Severity
		}
		return a.Code < b.Code
	})
	var sb strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&sb, "%s %s %s:%d:%d %s", e.Severity, e.Code, e.Path, e.Line, e.Col, e.Message)
		if i < len(entries)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func normalizeGoldenPath(p string) string {
	p = filepath.ToSlash(p)
	return strings.TrimPrefix(p, "./")
}

func sanitizeGolden(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
