package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI with explicit arguments and returns the exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	flags, err := parseFlags(rest)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'www --help' for usage.")
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "www %s\n", Version)
		return ExitSuccess
	}

	env = env.withDefaults()
	if flags.debug {
		env = env.withLogger(newDebugLogger(env.Stderr))
	}
	defer func() { _ = env.Logger.Sync() }()

	ctx, stop := notifyContext(env.context())
	defer stop()

	warnUnknownEnvVars(env.Stderr)

	if flags.sanitydir != "" {
		if err := runSanity(ctx, flags.sanitydir, env); err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	lines, err := htmlize(ctx, rest, env)
	for _, line := range lines {
		fmt.Fprintln(env.Stdout, line)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
