package benchstub

import (
	"context"
	"testing"

	"github.com/vitte-lang/vitte-sub005/internal/driver"
)

func TestRunAllCollectsEachJobsOutcome(t *testing.T) {
	jobs := []Job{
		{Name: "ok", Path: "a.vt", Src: []byte(`fn f() .end`)},
		{Name: "broken", Path: "b.vt", Src: []byte(`fn f() return nope; .end`)},
	}
	outcomes, err := RunAll(context.Background(), jobs)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Name != "ok" || outcomes[0].Result.ExitCode != driver.ExitOK {
		t.Fatalf("expected job 0 to succeed, got %+v", outcomes[0])
	}
	if outcomes[1].Name != "broken" || outcomes[1].Result.ExitCode != driver.ExitCompile {
		t.Fatalf("expected job 1 to report a compile error, got %+v", outcomes[1])
	}
}
