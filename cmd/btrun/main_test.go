package main

import (
	"os"
	"path/filepath"
	"testing"
)

const fixtureYAML = `
payload:
  greeting:
    kind: string
    str: hello
selection:
  start_index: 0
  nodes:
    - id: 0
      kind: simple
      edges: []
      command: {id: 100, index: 0}
  edges: []
behavior:
  root:
    id: 1
    kind: print_log
    message: "hello from btrun"
`

func TestRun_fixtureEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.yaml")
	if err := os.WriteFile(path, []byte(fixtureYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	exitCode := run("btrun", []string{"-fixture", path})
	if exitCode != 0 {
		t.Fatalf("run() exit code = %d, want 0", exitCode)
	}
}

func TestRun_missingFixtureFlag(t *testing.T) {
	if code := run("btrun", nil); code != 1 {
		t.Fatalf("run() exit code = %d, want 1", code)
	}
}

func TestRun_fixtureNotFound(t *testing.T) {
	if code := run("btrun", []string{"-fixture", "/does/not/exist.yaml"}); code != 1 {
		t.Fatalf("run() exit code = %d, want 1", code)
	}
}
