// Package benchstub is an interface-only placeholder for the external bench
// harness collaborator (spec §1: command surfaces besides the compiler
// itself are out of scope). It exposes just enough surface, running a
// fixed set of named compile jobs concurrently and collecting their
// results, for a real harness to be grafted on later. Mirrors surge's
// buildpipeline package, which parallelizes independent build steps with
// errgroup.
package benchstub

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vitte-lang/vitte-sub005/internal/driver"
)

// Job names one input file and the options to compile it with.
type Job struct {
	Name string
	Path string
	Src  []byte
	Opts driver.Options
}

// Outcome is one job's result, keyed by Job.Name.
type Outcome struct {
	Name   string
	Result driver.Result
}

// RunAll compiles every job concurrently, each against its own session, and
// returns their outcomes in job order. A failing job does not cancel its
// siblings: a bench harness wants every job's result, not fail-fast
// behavior.
func RunAll(ctx context.Context, jobs []Job) ([]Outcome, error) {
	outcomes := make([]Outcome, len(jobs))
	g, _ := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			sess := driver.NewSession()
			cj := driver.NewCompileJob(sess, job.Opts)
			var diagOut, codeOut discardBuffer
			res := cj.Run(job.Path, job.Src, &diagOut, &codeOut)
			outcomes[i] = Outcome{Name: job.Name, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// discardBuffer implements io.Writer by discarding everything, since the
// bench harness only cares about exit codes and diagnostic counts.
type discardBuffer struct{}

func (discardBuffer) Write(p []byte) (int, error) { return len(p), nil }
