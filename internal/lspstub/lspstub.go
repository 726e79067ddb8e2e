// Package lspstub is an interface-only placeholder for the external LSP
// server collaborator (spec §1: editor-facing surfaces are out of scope).
// It defines the shape a real language server would call into (one
// diagnostics-only pass per open document), and fans multiple open
// documents out concurrently with errgroup, mirroring benchstub's use of
// the same library for the bench harness stub.
package lspstub

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/driver"
)

// Document is one open editor buffer.
type Document struct {
	URI string
	Src []byte
}

// Diagnostics is one document's compile diagnostics, keyed by URI.
type Diagnostics struct {
	URI   string
	Items []diag.Diagnostic
}

// CheckAll runs a diagnostics-only compile pass over every open document
// concurrently, the shape an LSP "textDocument/didChange" fan-out would
// take across a workspace.
func CheckAll(ctx context.Context, docs []Document) ([]Diagnostics, error) {
	out := make([]Diagnostics, len(docs))
	g, _ := errgroup.WithContext(ctx)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			sess := driver.NewSession()
			job := driver.NewCompileJob(sess, driver.Options{})
			var diagOut, codeOut discardWriter
			res := job.Run(doc.URI, doc.Src, &diagOut, &codeOut)
			out[i] = Diagnostics{URI: doc.URI, Items: res.Diagnostics}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
