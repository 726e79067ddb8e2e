package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitte-lang/vitte-sub005/internal/ir"
)

func TestRunSucceedsAndEmitsC(t *testing.T) {
	sess := NewSession()
	job := NewCompileJob(sess, Options{
		Emit:   EmitC,
		Module: "demo",
	})
	var diagOut, codeOut bytes.Buffer
	res := job.Run("main.vt", []byte(`
		fn add(a: int, b: int) -> int
			return a + b;
		.end
	`), &diagOut, &codeOut)

	require.Equal(t, ExitOK, res.ExitCode)
	require.Empty(t, diagOut.String())
	require.Contains(t, codeOut.String(), "vitte_fn__demo__add")
}

func TestRunReportsUnresolvedIdentifierAsCompileError(t *testing.T) {
	sess := NewSession()
	job := NewCompileJob(sess, Options{})
	var diagOut, codeOut bytes.Buffer
	res := job.Run("main.vt", []byte(`
		fn f()
			return nope;
		.end
	`), &diagOut, &codeOut)

	require.Equal(t, ExitCompile, res.ExitCode)
	require.NotEmpty(t, res.Diagnostics)
	require.Contains(t, diagOut.String(), "unresolved identifier")
}

func TestRunLintsPhraseFileByExtension(t *testing.T) {
	sess := NewSession()
	job := NewCompileJob(sess, Options{Format: DiagHuman})
	var diagOut, codeOut bytes.Buffer
	res := job.Run("main.phr", []byte(`
		prog main
			set x = 1;
		.end
	`), &diagOut, &codeOut)

	require.Equal(t, ExitOK, res.ExitCode)
	require.NotEmpty(t, res.Diagnostics, "expected the unused binding lint to fire")
	found := false
	for _, d := range res.Diagnostics {
		if strings.Contains(d.Message, "unused") {
			found = true
		}
	}
	require.True(t, found, "expected an unused-binding warning, got %v", res.Diagnostics)
}

func TestRunEmitsIRSnapshot(t *testing.T) {
	sess := NewSession()
	job := NewCompileJob(sess, Options{Emit: EmitIR, Module: "demo"})
	var diagOut, codeOut bytes.Buffer
	res := job.Run("main.vt", []byte(`
		fn add(a: int, b: int) -> int
			return a + b;
		.end
	`), &diagOut, &codeOut)

	require.Equal(t, ExitOK, res.ExitCode)
	snap, err := ir.Decode(&codeOut)
	require.NoError(t, err)
	require.Equal(t, "demo", snap.ModulePath)
	require.Len(t, snap.Functions, 1)
	require.Equal(t, "vitte_fn__demo__add", snap.Functions[0].MangledName)
}

func TestRunFileReportsIOErrorForMissingPath(t *testing.T) {
	sess := NewSession()
	job := NewCompileJob(sess, Options{})
	var diagOut, codeOut bytes.Buffer
	res := job.RunFile("/nonexistent/does-not-exist.vt", &diagOut, &codeOut)

	require.Equal(t, ExitUsage, res.ExitCode)
	require.NotEmpty(t, res.Diagnostics)
	require.Contains(t, diagOut.String(), "does-not-exist.vt")
}

func TestEmitCRefusedForPhraseSurface(t *testing.T) {
	sess := NewSession()
	job := NewCompileJob(sess, Options{Emit: EmitC})
	var diagOut, codeOut bytes.Buffer
	res := job.Run("main.phr", []byte(`
		prog main
			say "hi";
		.end
	`), &diagOut, &codeOut)

	require.Equal(t, ExitUsage, res.ExitCode)
	require.Empty(t, codeOut.String())
}
