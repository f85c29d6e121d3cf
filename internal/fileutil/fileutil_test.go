package fileutil_test

// Notes:
// - WriteTempFile Write and Close error branches are not tested because
//   triggering disk write failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-www/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateSuffix - Suffix validation
// ---------------------------------------------------------------------------

func TestValidateSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		suffix  string
		wantErr error
	}{
		{name: "page suffix", suffix: fileutil.PageSuffix},
		{name: "plain extension", suffix: ".html"},
		{name: "empty", suffix: "", wantErr: fileutil.ErrSuffixEmpty},
		{name: "forward slash", suffix: "../etc/passwd", wantErr: fileutil.ErrSuffixPathTraversal},
		{name: "backslash", suffix: "..\\windows", wantErr: fileutil.ErrSuffixPathTraversal},
		{name: "null byte", suffix: "html\x00exe", wantErr: fileutil.ErrSuffixPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateSuffix(tt.suffix)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSuffix(%q) = %v, want %v", tt.suffix, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temporary page creation
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "html page", content: "<html><body><div>hello</div></body></html>\n"},
		{name: "empty content", content: ""},
		{name: "cyrillic content", content: "<div>привет</div>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path, cleanup, err := fileutil.WriteTempFile(dir, []byte(tt.content), fileutil.PageSuffix)
			if err != nil {
				t.Fatalf("WriteTempFile() error = %v", err)
			}
			defer cleanup()

			if filepath.Dir(path) != dir {
				t.Errorf("path %q not in %q", path, dir)
			}
			base := filepath.Base(path)
			if !strings.HasPrefix(base, "tmp") || !strings.HasSuffix(base, fileutil.PageSuffix) {
				t.Errorf("name %q does not match tmp*%s", base, fileutil.PageSuffix)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read temp file: %v", err)
			}
			if string(data) != tt.content {
				t.Errorf("file content = %q, want %q", data, tt.content)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile_UniqueNames - Each call gets a fresh path
// ---------------------------------------------------------------------------

func TestWriteTempFile_UniqueNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first, _, err := fileutil.WriteTempFile(dir, []byte("a"), fileutil.PageSuffix)
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	second, _, err := fileutil.WriteTempFile(dir, []byte("b"), fileutil.PageSuffix)
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	if first == second {
		t.Errorf("two calls returned the same path %q", first)
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile_Cleanup - Cleanup function removes file
// ---------------------------------------------------------------------------

func TestWriteTempFile_Cleanup(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile(t.TempDir(), []byte("x"), fileutil.PageSuffix)
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file still exists after cleanup at %s", path)
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile_Errors - Invalid suffix and directory
// ---------------------------------------------------------------------------

func TestWriteTempFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid suffix", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteTempFile(t.TempDir(), nil, "../x")
		if !errors.Is(err, fileutil.ErrSuffixPathTraversal) {
			t.Errorf("error = %v, want ErrSuffixPathTraversal", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope")
		_, _, err := fileutil.WriteTempFile(missing, nil, fileutil.PageSuffix)
		if err == nil {
			t.Fatal("expected error for missing directory")
		}
		if !strings.Contains(err.Error(), "creating temp file") {
			t.Errorf("error = %v, want 'creating temp file'", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteAtomic - Replace file contents
// ---------------------------------------------------------------------------

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.html")

	if err := fileutil.WriteAtomic(path, []byte("first")); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	if err := fileutil.WriteAtomic(path, []byte("second")); err != nil {
		t.Fatalf("WriteAtomic() second call error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestWriteAtomic_MissingParent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "page.html")
	if err := fileutil.WriteAtomic(path, []byte("x")); err == nil {
		t.Error("expected error for missing parent directory")
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Path probing
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fileutil.FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if fileutil.FileExists(dir) {
		t.Errorf("FileExists(%q) = true for a directory", dir)
	}
	if fileutil.FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("FileExists() = true for a missing file")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fileutil.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if fileutil.DirExists(file) {
		t.Errorf("DirExists(%q) = true for a file", file)
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"default", false},
		{"dark", false},
		{"my-style", false},
		{"./page.html", true},
		{"../shared/dark.css", true},
		{"/abs/page.html", true},
		{`C:\pages\log.html`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
