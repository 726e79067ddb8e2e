package driver

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/cbackend"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/ir"
	"github.com/vitte-lang/vitte-sub005/internal/lint"
	"github.com/vitte-lang/vitte-sub005/internal/pal"
	"github.com/vitte-lang/vitte-sub005/internal/parser"
	"github.com/vitte-lang/vitte-sub005/internal/sema"
	"github.com/vitte-lang/vitte-sub005/internal/source"
)

// Surface selects which parser entry point a file is fed through. A file is
// phrase-flagged by its extension: ".phr" sources use the "prog ... end"
// keyword surface (spec §4.4, §9); everything else uses the core surface,
// whose blocks close with the same ".end" terminator. Options.ForceSurface
// overrides the extension-based guess, since the CLI also accepts stdin (no
// extension to inspect).
type Surface uint8

const (
	SurfaceCore Surface = iota
	SurfacePhrase
)

// DetectSurface guesses a file's surface from its path extension.
func DetectSurface(path string) Surface {
	if strings.EqualFold(filepath.Ext(path), ".phr") {
		return SurfacePhrase
	}
	return SurfaceCore
}

// EmitKind selects the driver's output artifact.
type EmitKind uint8

const (
	EmitNone EmitKind = iota
	EmitC
	EmitIR
)

// DiagFormat selects how diagnostics are rendered when the job fails or
// warns (spec §4.2, §6).
type DiagFormat uint8

const (
	DiagHuman DiagFormat = iota
	DiagJSON
)

// Options configures one compile job (spec §4.9, §6's CLI flag surface).
type Options struct {
	// ForceSurface overrides DetectSurface's extension guess when non-zero
	// is meaningful; set HasForceSurface to use it.
	ForceSurface    Surface
	HasForceSurface bool

	Emit       EmitKind
	Module     string // dotted/slash module path used for C name mangling
	HeaderName string // header-guard macro, e.g. "DEMO_H"

	Format DiagFormat
	Werror bool // promote warnings to errors for exit-code purposes
	Color  bool
	JSON   diag.JSONMode

	ParseOptions parser.Options
}

// Result reports what a job did, independent of how its diagnostics were
// rendered.
type Result struct {
	ExitCode    int
	Diagnostics []diag.Diagnostic
}

// Exit codes per spec §6: 0 success, 1 compile error, 2 usage/IO error.
const (
	ExitOK       = 0
	ExitCompile  = 1
	ExitUsage    = 2
)

// CompileJob runs the full compile sequence against a single input file.
type CompileJob struct {
	Session *Session
	Opts    Options
}

// NewCompileJob creates a job sharing sess's arena/interner/diag bag.
func NewCompileJob(sess *Session, opts Options) *CompileJob {
	return &CompileJob{Session: sess, Opts: opts}
}

// RunFile reads path through the PAL's read_all primitive and runs it
// through Run. A read failure is reported as an IOReadFailed diagnostic
// pinned to an empty span over a virtual zero-length registration of path
// (spec §7: "driver-level failures" use an off=0,len=0 span). Registering
// the file first, even with no content, keeps FileID 0 meaningful: an
// unregistered FileSet has nothing at index 0, and rendering a diagnostic
// against a file the set never saw panics rather than producing output.
func (j *CompileJob) RunFile(path string, diagOut, codeOut io.Writer) Result {
	src, err := pal.ReadAll(path)
	if err != nil {
		fileID := j.Session.Files.AddVirtual(path, nil)
		d := diag.NewError(diag.IOReadFailed, source.Span{File: fileID}, err.Error())
		j.Session.Bag.Add(d)
		j.renderDiagnostics(diagOut)
		return Result{ExitCode: ExitUsage, Diagnostics: j.Session.Bag.Items()}
	}
	return j.Run(path, src, diagOut, codeOut)
}

// Run executes the six-step sequence: register the file, lex/parse (and
// lint, if phrase-flagged), resolve symbols, then either render diagnostics
// or stream the C backend (spec §4.9).
func (j *CompileJob) Run(path string, src []byte, diagOut, codeOut io.Writer) Result {
	sess := j.Session
	fileID := sess.Files.Add(path, src, 0)

	surface := DetectSurface(path)
	if j.Opts.HasForceSurface {
		surface = j.Opts.ForceSurface
	}

	var root ast.NodeID
	switch surface {
	case SurfacePhrase:
		root = parser.ParsePhrase(fileID, src, sess.Builder, sess.Bag, j.Opts.ParseOptions)
		l := lint.New(sess.Builder.Tree, sess.Strings, sess.Bag)
		l.LintFile(root)
	default:
		root = parser.ParseCore(fileID, src, sess.Builder, sess.Bag, j.Opts.ParseOptions)
	}

	if surface == SurfaceCore {
		resolver, tbl := sema.New(sess.Builder.Tree, sess.Bag, sess.Types)
		resolver.ResolveFile(root)
		sess.Table = tbl
	}

	sess.Bag.SortByLocation()
	failed := sess.Bag.HasErrors() || (j.Opts.Werror && sess.Bag.HasWarnings())

	if failed {
		j.renderDiagnostics(diagOut)
		return Result{ExitCode: ExitCompile, Diagnostics: sess.Bag.Items()}
	}

	if len(sess.Bag.Items()) > 0 {
		j.renderDiagnostics(diagOut)
	}

	if j.Opts.Emit == EmitC {
		if surface != SurfaceCore {
			fmt.Fprintln(diagOut, "cannot emit C from a phrase-surface file: phrase surface is lint-only")
			return Result{ExitCode: ExitUsage, Diagnostics: sess.Bag.Items()}
		}
		gen := cbackend.NewGenerator(sess.Builder.Tree, sess.Strings, sess.Table, j.Opts.Module, codeOut)
		guard := j.Opts.HeaderName
		if guard == "" {
			guard = "VITTE_OUT_H"
		}
		if err := gen.EmitFile(root, guard); err != nil {
			fmt.Fprintf(diagOut, "write error: %v\n", err)
			return Result{ExitCode: ExitUsage, Diagnostics: sess.Bag.Items()}
		}
	}

	if j.Opts.Emit == EmitIR {
		if surface != SurfaceCore {
			fmt.Fprintln(diagOut, "cannot emit IR from a phrase-surface file: phrase surface is lint-only")
			return Result{ExitCode: ExitUsage, Diagnostics: sess.Bag.Items()}
		}
		snap := snapshotOf(sess.Builder.Tree, sess.Strings, j.Opts.Module, root)
		snap.Warnings = len(sess.Bag.Items()) // all remaining items are non-errors at this point
		if err := ir.Encode(codeOut, snap); err != nil {
			fmt.Fprintf(diagOut, "write error: %v\n", err)
			return Result{ExitCode: ExitUsage, Diagnostics: sess.Bag.Items()}
		}
	}

	return Result{ExitCode: ExitOK, Diagnostics: sess.Bag.Items()}
}

// snapshotOf builds an ir.Snapshot describing every top-level function in
// file, matching the shapes the C backend would otherwise lower.
func snapshotOf(tree *ast.Tree, strs *source.Interner, module string, file ast.NodeID) *ir.Snapshot {
	snap := &ir.Snapshot{ModulePath: module}
	name := func(id source.StringID) string {
		s, _ := strs.Lookup(id)
		return s
	}
	root := tree.Node(file)
	if root == nil {
		return snap
	}
	for _, kid := range root.Kids {
		n := tree.Node(kid)
		if n == nil || n.Kind != ast.KindFn {
			continue
		}
		fn := ir.Fn{Name: name(n.Name)}
		if n.A != ast.NoNodeID {
			fn.ReturnType = name(tree.Node(n.A).Name)
		}
		for _, paramID := range n.Kids {
			p := tree.Node(paramID)
			if p == nil || p.Kind != ast.KindFnParam {
				continue
			}
			param := ir.Param{Name: name(p.Name)}
			if p.A != ast.NoNodeID {
				param.Type = name(tree.Node(p.A).Name)
			}
			fn.Params = append(fn.Params, param)
		}
		fn.MangledName = cbackend.MangleFn(module, fn.Name, "")
		snap.Functions = append(snap.Functions, fn)
	}
	return snap
}

func (j *CompileJob) renderDiagnostics(w io.Writer) {
	items := j.Session.Bag.Items()
	switch j.Opts.Format {
	case DiagJSON:
		_ = diag.RenderJSON(w, items, j.Session.Files, j.Opts.JSON)
	default:
		opts := diag.HumanOptions{}
		if j.Opts.Color {
			opts.Color = color.New(color.Bold)
		}
		diag.RenderHuman(w, items, j.Session.Files, opts)
	}
}
