package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitte-lang/vitte-sub005/internal/cliflags"
	"github.com/vitte-lang/vitte-sub005/internal/driver"
)

func runCompile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing input file (usage: steelc [flags] <file>)")
	}
	path := args[0]

	flags, err := cliflags.FromCommand(cmd)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Module:     flags.Module,
		HeaderName: headerGuardFor(flags.Module),
		Werror:     flags.Werror,
		Color:      flags.Color,
	}
	if flags.JSON {
		opts.Format = driver.DiagJSON
	}
	switch strings.ToLower(flags.Emit) {
	case "c":
		opts.Emit = driver.EmitC
	case "ir":
		opts.Emit = driver.EmitIR
	}
	switch strings.ToLower(flags.Surface) {
	case "core":
		opts.HasForceSurface, opts.ForceSurface = true, driver.SurfaceCore
	case "phrase":
		opts.HasForceSurface, opts.ForceSurface = true, driver.SurfacePhrase
	}

	sess := driver.NewSession()
	job := driver.NewCompileJob(sess, opts)

	var codeOut *os.File
	if opts.Emit != driver.EmitNone && flags.Output != "" {
		f, err := os.Create(flags.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flags.Output, err)
		}
		defer f.Close()
		codeOut = f
	} else {
		codeOut = os.Stdout
	}

	result := job.RunFile(path, os.Stderr, codeOut)
	os.Exit(result.ExitCode)
	return nil
}

func headerGuardFor(module string) string {
	var sb strings.Builder
	sb.WriteString("STEELC_")
	for _, r := range strings.ToUpper(module) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	sb.WriteString("_H")
	return sb.String()
}
