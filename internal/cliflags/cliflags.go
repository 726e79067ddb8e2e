// Package cliflags extracts and validates the steelc CLI surface (spec §6)
// from a *cobra.Command, using typed Flags().GetBool/GetString getters and
// explicit mutual-exclusion checks in the same style as surge's build
// command ("--release and --dev are mutually exclusive").
package cliflags

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Flags is the validated, typed view of one compile invocation's flags.
type Flags struct {
	Output  string
	Emit    string
	JSON    bool
	Werror  bool
	Color   bool
	Surface string
	Module  string
	Verbose int
}

// FromCommand reads and validates every steelc flag off cmd, the same way
// surge's buildExecution reads its flag set before acting on it.
func FromCommand(cmd *cobra.Command) (Flags, error) {
	var f Flags
	var err error

	if f.Output, err = cmd.Flags().GetString("output"); err != nil {
		return f, err
	}
	if f.Emit, err = cmd.Flags().GetString("emit"); err != nil {
		return f, err
	}
	if f.JSON, err = cmd.Flags().GetBool("json"); err != nil {
		return f, err
	}
	if f.Werror, err = cmd.Flags().GetBool("werror"); err != nil {
		return f, err
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return f, err
	}
	f.Color = ResolveColor(colorMode)
	if f.Surface, err = cmd.Flags().GetString("surface"); err != nil {
		return f, err
	}
	if f.Module, err = cmd.Flags().GetString("module"); err != nil {
		return f, err
	}
	if f.Verbose, err = cmd.Flags().GetCount("verbose"); err != nil {
		return f, err
	}

	switch strings.ToLower(f.Surface) {
	case "", "core", "phrase":
	default:
		return f, fmt.Errorf("unsupported --surface value %q (must be \"core\" or \"phrase\")", f.Surface)
	}
	switch strings.ToLower(f.Emit) {
	case "", "c", "ir":
	default:
		return f, fmt.Errorf("unsupported --emit value %q (must be \"c\" or \"ir\")", f.Emit)
	}

	return f, nil
}

// ResolveColor turns "auto"/"on"/"off" into a concrete decision, defaulting
// to whatever fatih/color's own terminal detection already decided for
// "auto" or any unrecognized value.
func ResolveColor(mode string) bool {
	switch strings.ToLower(mode) {
	case "on":
		return true
	case "off":
		return false
	default:
		return !color.NoColor
	}
}
