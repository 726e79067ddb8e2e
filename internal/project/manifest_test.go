package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "steelc.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoadParsesPackageAndBuildSections(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"
entry = "src/main.vt"

[build]
emit = "c"
out = "build/demo.c"
werror = true
`)
	m, err := Load(filepath.Join(dir, "steelc.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package.Name != "demo" || m.Package.Module != "demo" {
		t.Fatalf("unexpected package section: %+v", m.Package)
	}
	if m.Build.Emit != "c" || !m.Build.Werror {
		t.Fatalf("unexpected build section: %+v", m.Build)
	}
}

func TestLoadRejectsMissingPackageName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[build]\nemit = \"c\"\n")
	if _, err := Load(filepath.Join(dir, "steelc.toml")); err == nil {
		t.Fatalf("expected an error for a manifest with no [package].name")
	}
}

func TestLoadAcceptsYAMLVariant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steelc.yaml")
	content := "package:\n  name: demo\n  entry: src/main.vt\nbuild:\n  emit: c\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package.Name != "demo" || m.Build.Emit != "c" {
		t.Fatalf("unexpected manifest: %+v", m)
	}
}

func TestFindManifestWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("expected manifest found at %s, got %s", root, path)
	}
}
