// Package viewer opens a generated page in the user's viewer.
//
// Opening is best effort: an Opener reports whether it handled the request,
// and platforms without a known launcher answer "not handled" rather than
// failing. The platform launcher is chosen at build time by Default.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
)

// Sentinel errors for viewer operations.
var (
	ErrEmptyCommand = errors.New("viewer command cannot be empty")
	ErrOpenFailed   = errors.New("failed to open viewer")
)

// Opener opens a file in a viewer.
type Opener interface {
	// Open hands path to the viewer. handled is false when the opener has no
	// way to show the file; err is set only when an attempt was made and failed.
	Open(ctx context.Context, path string) (handled bool, err error)
}

// Noop never opens anything.
type Noop struct{}

// Open implements Opener.
func (Noop) Open(context.Context, string) (bool, error) { return false, nil }

// Unsupported is the Opener of platforms without a known launcher.
type Unsupported struct {
	Platform string
}

// Open implements Opener.
func (Unsupported) Open(context.Context, string) (bool, error) { return false, nil }

// CommandOpener runs an external program with the page path as last argument.
type CommandOpener struct {
	Name string
	Args []string
	// Wait blocks until the launcher exits and reports its exit status.
	// Launchers that stay alive with the viewer should not wait.
	Wait bool
}

// Command builds a waiting CommandOpener from a command line such as
// "firefox --new-tab". Arguments are split on whitespace; no quoting.
func Command(cmdline string) (*CommandOpener, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	return &CommandOpener{Name: fields[0], Args: fields[1:], Wait: true}, nil
}

// Open implements Opener.
func (c *CommandOpener) Open(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	args := append(slices.Clone(c.Args), path)

	if c.Wait {
		cmd := exec.CommandContext(ctx, c.Name, args...) // #nosec G204 -- viewer command is user configuration
		if err := cmd.Run(); err != nil {
			return true, fmt.Errorf("%w: %s: %v", ErrOpenFailed, c.Name, err)
		}
		return true, nil
	}

	// Not tied to ctx: the viewer must outlive this process.
	cmd := exec.Command(c.Name, args...) // #nosec G204 -- viewer command is user configuration
	if err := cmd.Start(); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrOpenFailed, c.Name, err)
	}
	_ = cmd.Process.Release()
	return true, nil
}

// String returns the command line without the page path.
func (c *CommandOpener) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Compile-time interface checks.
var (
	_ Opener = Noop{}
	_ Opener = Unsupported{}
	_ Opener = (*CommandOpener)(nil)
)
