package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

// fakeOpener records the pages it was asked to open.
type fakeOpener struct {
	paths []string
	err   error
}

func (f *fakeOpener) Open(_ context.Context, path string) (bool, error) {
	f.paths = append(f.paths, path)
	if f.err != nil {
		return false, f.err
	}
	return true, nil
}

var errViewerBroken = errors.New("viewer exploded")

// testEnv bundles an Environment with its captured outputs.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	opener *fakeOpener
	logs   *observer.ObservedLogs
	outDir string
}

// newTestEnv returns an Environment reading stdin from the given text and
// writing pages to a fresh temp directory.
func newTestEnv(t *testing.T, stdin string) *testEnv {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	opener := &fakeOpener{}
	outDir := t.TempDir()

	return &testEnv{
		Environment: &Environment{
			Now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
			Stdin:   strings.NewReader(stdin),
			Stdout:  stdout,
			Stderr:  stderr,
			Logger:  zap.New(core),
			Opener:  opener,
			TempDir: outDir,
		},
		stdout: stdout,
		stderr: stderr,
		opener: opener,
		logs:   logs,
		outDir: outDir,
	}
}

// writeTestFile writes content to dir/name and returns the path.
func writeTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

// pages lists the generated page files in dir.
func pages(t *testing.T, dir string) []string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "tmp*-www.html"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	return matches
}

// outputPath returns the path of the "output: " line.
func outputPath(t *testing.T, lines []string) string {
	t.Helper()

	for _, line := range lines {
		if p, ok := strings.CutPrefix(line, "output: "); ok {
			return p
		}
	}
	t.Fatalf("no output line in %q", lines)
	return ""
}
