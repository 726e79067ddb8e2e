// Package main implements the steelc CLI: the bootstrap front end's driver
// entry point (spec §4.9, §6).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "steelc [flags] <file>",
	Short: "Bootstrap compiler front end for the steel language",
	Long:  "steelc lexes, parses, lints, and resolves steel source, optionally emitting C99.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompile,
}

func main() {
	rootCmd.PersistentFlags().StringP("output", "o", "", "output path (default: stdout)")
	rootCmd.PersistentFlags().String("emit", "", "emit artifact: c|ir (default: none, diagnostics only)")
	rootCmd.PersistentFlags().Bool("json", false, "render diagnostics as JSON instead of human-readable text")
	rootCmd.PersistentFlags().Bool("werror", false, "treat warnings as errors")
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().String("surface", "", "force parser surface: core|phrase (default: guessed from extension)")
	rootCmd.PersistentFlags().String("module", "main", "module path used for C name mangling")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
