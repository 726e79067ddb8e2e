package diag

import (
	"encoding/json"
	"io"

	"github.com/vitte-lang/vitte-sub005/internal/source"
)

type jsonSpan struct {
	File  source.FileID `json:"file_id"`
	Lo    uint32        `json:"lo"`
	Hi    uint32        `json:"hi"`
}

type jsonLabel struct {
	Style   string `json:"style"`
	File    string `json:"file"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Message string `json:"message,omitempty"`
}

type jsonDiagnostic struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	File     string      `json:"file"`
	Line     uint32      `json:"line"`
	Col      uint32      `json:"col"`
	Span     jsonSpan    `json:"span"`
	Labels   []jsonLabel `json:"labels"`
	Help     string      `json:"help,omitempty"`
	Notes    []string    `json:"notes"`
}

func toJSONDiagnostic(d Diagnostic, fs *source.FileSet) jsonDiagnostic {
	f := fs.Get(d.Primary.Span.File)
	start, _ := fs.Resolve(d.Primary.Span)
	labels := make([]jsonLabel, 0, len(d.Labels))
	for _, l := range d.Labels {
		lf := fs.Get(l.Span.File)
		ls, _ := fs.Resolve(l.Span)
		style := "secondary"
		if l.Style == LabelPrimary {
			style = "primary"
		}
		labels = append(labels, jsonLabel{
			Style:   style,
			File:    lf.FormatPath("relative", fs.BaseDir()),
			Line:    ls.Line,
			Col:     ls.Col,
			Message: l.Message,
		})
	}
	notes := d.Notes
	if notes == nil {
		notes = []string{}
	}
	return jsonDiagnostic{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		File:     f.FormatPath("relative", fs.BaseDir()),
		Line:     start.Line,
		Col:      start.Col,
		Span: jsonSpan{
			File: d.Primary.Span.File,
			Lo:   d.Primary.Span.Start,
			Hi:   d.Primary.Span.End,
		},
		Labels: labels,
		Help:   d.Help,
		Notes:  notes,
	}
}

// JSONMode selects between one-JSON-object-per-line and a single wrapping
// array (spec §4.2).
type JSONMode uint8

const (
	JSONLines JSONMode = iota
	JSONArray
)

// RenderJSON writes diags as JSON per spec §4.2's schema, in the requested
// mode.
func RenderJSON(w io.Writer, diags []Diagnostic, fs *source.FileSet, mode JSONMode) error {
	converted := make([]jsonDiagnostic, len(diags))
	for i, d := range diags {
		converted[i] = toJSONDiagnostic(d, fs)
	}
	enc := json.NewEncoder(w)
	if mode == JSONArray {
		return enc.Encode(converted)
	}
	for _, jd := range converted {
		if err := enc.Encode(jd); err != nil {
			return err
		}
	}
	return nil
}
