// Package project locates and parses a steelc project manifest, grounded on
// surge's internal/project package (root.go's upward search, modules.go's
// toml.DecodeFile usage). Both a TOML ("steelc.toml") and a YAML
// ("steelc.yaml") variant are accepted, exercising yaml.v3 for config
// loading alongside BurntSushi/toml.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrPackageNameMissing indicates a manifest's [package] section has no name.
var ErrPackageNameMissing = errors.New("missing [package].name")

// PackageSpec is a manifest's [package] section.
type PackageSpec struct {
	Name   string `toml:"name" yaml:"name"`
	Entry  string `toml:"entry" yaml:"entry"`   // path to the entrypoint source file
	Module string `toml:"module" yaml:"module"` // mangling namespace; defaults to Name
}

// BuildSpec is a manifest's [build] section.
type BuildSpec struct {
	Emit    string `toml:"emit" yaml:"emit"` // "c" | "ir"
	Out     string `toml:"out" yaml:"out"`   // output path
	Werror  bool   `toml:"werror" yaml:"werror"`
	Surface string `toml:"surface" yaml:"surface"` // "core" | "phrase", empty for auto
}

// Manifest is a parsed steelc.toml or steelc.yaml.
type Manifest struct {
	Package PackageSpec `toml:"package" yaml:"package"`
	Build   BuildSpec   `toml:"build" yaml:"build"`

	Root string `toml:"-" yaml:"-"` // directory containing the manifest, filled in by Load
}

var manifestNames = []string{"steelc.toml", "steelc.yaml"}

// FindManifest walks up from startDir looking for steelc.toml or
// steelc.yaml, preferring the TOML form when both are present in the same
// directory.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		for _, name := range manifestNames {
			candidate := filepath.Join(dir, name)
			if _, statErr := os.Stat(candidate); statErr == nil {
				return candidate, true, nil
			} else if !errors.Is(statErr, os.ErrNotExist) {
				return "", false, fmt.Errorf("stat %q: %w", candidate, statErr)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load parses the manifest at path, choosing TOML or YAML by extension.
func Load(path string) (*Manifest, error) {
	var m Manifest
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%s: parsing YAML: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return nil, fmt.Errorf("%s: parsing TOML: %w", path, err)
		}
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if m.Package.Module == "" {
		m.Package.Module = m.Package.Name
	}
	m.Root = filepath.Dir(path)
	return &m, nil
}
