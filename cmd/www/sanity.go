package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-www/internal/fileutil"
)

// ErrSanityDir rejects a --sanitydir value that is not a directory.
var ErrSanityDir = errors.New("--sanitydir should be followed by an existing directory")

// sanityPattern extracts the encoding from names like "log-enc-cp1251.txt".
var sanityPattern = regexp.MustCompile(`-enc-([\w-]+)\.`)

// runSanity runs htmlize on every regular file of dir whose name carries an
// encoding, in name order. Failures are reported per file and the batch goes
// on. Once the batch has run it returns nil whatever the file results were;
// only a bad directory or cancellation is an error.
func runSanity(ctx context.Context, dir string, env *Environment) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSanityDir, dir)
	}
	if !fileutil.DirExists(root) {
		return fmt.Errorf("%w: %s", ErrSanityDir, dir)
	}

	// os.ReadDir sorts by file name
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSanityDir, err)
	}

	var succeeded, failed int
	for _, entry := range entries {
		if ctx.Err() != nil {
			fmt.Fprintf(env.Stdout, "%d succeeded, %d failed\n", succeeded, failed)
			return ctx.Err()
		}
		if !entry.Type().IsRegular() {
			continue
		}
		m := sanityPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}

		args := []string{
			"--input", filepath.Join(root, entry.Name()),
			"--encoding", m[1],
			"--test",
			"--stat",
		}
		fmt.Fprintln(env.Stdout, "invoking: "+strings.Join(args, " "))

		lines, err := safeHTMLize(ctx, args, env)
		for _, line := range lines {
			fmt.Fprintln(env.Stdout, line)
		}
		if err != nil {
			fmt.Fprintf(env.Stdout, "error: %v\n", err)
			env.Logger.Debug("sanity item failed", zap.String("file", entry.Name()), zap.Error(err))
			failed++
			continue
		}
		succeeded++
	}

	fmt.Fprintf(env.Stdout, "%d succeeded, %d failed\n", succeeded, failed)
	return nil
}

// safeHTMLize runs htmlize and turns a panic into an error.
func safeHTMLize(ctx context.Context, args []string, env *Environment) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return htmlize(ctx, args, env)
}
