package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want cliFlags
	}{
		{
			name: "no flags",
			args: nil,
			want: cliFlags{},
		},
		{
			name: "short flags",
			args: []string{"-i", "in.txt", "-e", "cp1251", "-v", "-o", "out.html", "-c", "work", "-h"},
			want: cliFlags{input: "in.txt", encoding: "cp1251", verbose: true, output: "out.html", config: "work", help: true},
		},
		{
			name: "long flags with equals",
			args: []string{"--input=in.txt", "--encoding=utf_16_le", "--stat", "--title=Build log"},
			want: cliFlags{input: "in.txt", encoding: "utf_16_le", stat: true, title: "Build log"},
		},
		{
			name: "test implies verbose",
			args: []string{"--test"},
			want: cliFlags{test: true, verbose: true},
		},
		{
			name: "page flags",
			args: []string{"--template", "t.html", "--style", "dark", "--asset-path", "/a", "--trim"},
			want: cliFlags{template: "t.html", style: "dark", assetPath: "/a", trim: true},
		},
		{
			name: "diagnostics",
			args: []string{"--debug", "--version", "--print-config"},
			want: cliFlags{debug: true, version: true, printConfig: true},
		},
		{
			name: "sanitydir",
			args: []string{"--sanitydir", "testdata"},
			want: cliFlags{sanitydir: "testdata"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%q) error = %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, *got, cmp.AllowUnexported(cliFlags{})); diff != "" {
				t.Errorf("parseFlags(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"missing value", []string{"--input"}},
		{"positional argument", []string{"file.txt"}},
		{"bool with value", []string{"--test=maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseFlags(tt.args)
			if !errors.Is(err, ErrUsage) {
				t.Errorf("parseFlags(%q) error = %v, want ErrUsage", tt.args, err)
			}
		})
	}
}
