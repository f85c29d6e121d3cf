package main

// Notes:
// - Tests using t.Setenv cannot run in parallel; they stay sequential.
// - applyEnvConfig is pure and runs in parallel.

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-www/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable reading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("WWW_CONFIG", "work")
	t.Setenv("WWW_ENCODING", "cp1251")
	t.Setenv("WWW_OUTPUT_DIR", "/tmp/pages")
	t.Setenv("WWW_TEMPLATE", "plain")
	t.Setenv("WWW_STYLE", "dark")
	t.Setenv("WWW_VIEWER", "firefox --new-tab")

	want := &envConfig{
		ConfigPath: "work",
		Encoding:   "cp1251",
		OutputDir:  "/tmp/pages",
		Template:   "plain",
		Style:      "dark",
		Viewer:     "firefox --new-tab",
	}
	if diff := cmp.Diff(want, loadEnvConfig()); diff != "" {
		t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("WWW_STYEL", "dark")
	t.Setenv("WWW_ACONFIG", "x")
	t.Setenv("WWW_STYLE", "dark")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	want := "warning: unknown environment variable WWW_ACONFIG (typo?)\n" +
		"warning: unknown environment variable WWW_STYEL (typo?)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env vars over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		env    envConfig
		modify func(*config.Config)
	}{
		{
			name:   "empty env keeps config",
			env:    envConfig{},
			modify: func(*config.Config) {},
		},
		{
			name: "set variables override",
			env:  envConfig{Encoding: "cp1251", OutputDir: "/out", Template: "plain", Style: "dark", Viewer: "lynx"},
			modify: func(c *config.Config) {
				c.Input.Encoding = "cp1251"
				c.Output.Dir = "/out"
				c.Page.Template = "plain"
				c.Page.Style = "dark"
				c.Viewer.Command = "lynx"
			},
		},
		{
			name:   "config path is not a config field",
			env:    envConfig{ConfigPath: "work"},
			modify: func(*config.Config) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := func() *config.Config {
				c := config.DefaultConfig()
				c.Input.Encoding = "utf_16"
				c.Page.Style = "compact"
				c.Viewer.Command = "open"
				return c
			}

			got := base()
			applyEnvConfig(&tt.env, got)

			want := base()
			tt.modify(want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("applyEnvConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHTMLize_Env - Precedence through a whole run
// ---------------------------------------------------------------------------

func TestHTMLize_EnvOutputDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WWW_OUTPUT_DIR", dir)

	env := newTestEnv(t, "x\n")
	lines, err := htmlize(context.Background(), []string{"--test"}, env.Environment)
	if err != nil {
		t.Fatalf("htmlize() error = %v", err)
	}
	if got := outputPath(t, lines); !strings.HasPrefix(got, dir) {
		t.Errorf("output = %q, want a page under %q", got, dir)
	}
	if got := pages(t, env.outDir); len(got) != 0 {
		t.Errorf("pages written to Environment.TempDir: %v", got)
	}
}

func TestHTMLize_EnvOverridesConfigFlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "www.yaml", []byte("page:\n  style: compact\n"))
	t.Setenv("WWW_CONFIG", cfgPath)
	t.Setenv("WWW_STYLE", "dark")

	cfg, err := loadConfig(&cliFlags{})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Page.Style != "dark" {
		t.Errorf("style = %q, want env value %q", cfg.Page.Style, "dark")
	}

	cfg, err = loadConfig(&cliFlags{style: "flag.css"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Page.Style != "flag.css" {
		t.Errorf("style = %q, want flag value", cfg.Page.Style)
	}
}

func TestHTMLize_EnvViewer(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("needs /bin/sh")
	}
	t.Setenv("WWW_VIEWER", "/bin/sh -c exit")

	env := newTestEnv(t, "x\n")
	if _, err := htmlize(context.Background(), nil, env.Environment); err != nil {
		t.Fatalf("htmlize() error = %v", err)
	}
	if len(env.opener.paths) != 0 {
		t.Errorf("default opener used despite WWW_VIEWER: %v", env.opener.paths)
	}
	if env.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want no warning", env.stderr.String())
	}
}
