package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/alnah/go-www"
	"github.com/alnah/go-www/internal/assets"
	"github.com/alnah/go-www/internal/charset"
	"github.com/alnah/go-www/internal/config"
	"github.com/alnah/go-www/internal/fileutil"
	"github.com/alnah/go-www/internal/hints"
	"github.com/alnah/go-www/internal/viewer"
)

// Sentinel errors for CLI operations.
var (
	ErrInputNotFound = errors.New("--input should be followed by an existing file name")
	ErrPrintConfig   = errors.New("failed to print config")
)

// stdinTitle is the page title when reading standard input.
const stdinTitle = "stdin"

// htmlize runs one page generation with explicit arguments and returns the
// lines to print. Help, version and --sanitydir are handled by runMain.
func htmlize(ctx context.Context, args []string, env *Environment) ([]string, error) {
	flags, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	if flags.printConfig {
		data, err := cfg.Dump()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPrintConfig, err)
		}
		fmt.Fprint(env.Stdout, string(data))
		return nil, nil
	}

	if flags.encoding != "" && flags.input == "" {
		fmt.Fprintln(env.Stderr, "warning: --encoding is ignored without --input")
	}

	// Open the input before anything is written
	in, title, closeInput, err := openInput(flags, cfg, env)
	if err != nil {
		return nil, err
	}
	defer closeInput()

	encoding := ""
	if flags.input != "" {
		encoding = cfg.Input.Encoding
	}

	conv, err := www.NewConverter(
		www.WithTemplate(cfg.Page.Template),
		www.WithStyle(cfg.Page.Style),
		www.WithAssetPath(cfg.Page.AssetPath),
		www.WithTrimTrailingSpace(cfg.Render.TrimTrailingSpace),
	)
	if err != nil {
		return nil, withAssetHint(err)
	}

	start := env.Now()
	result, err := conv.Convert(ctx, www.Input{Reader: in, Encoding: encoding, Title: title})
	if err != nil {
		return nil, withInputHint(err)
	}
	env.Logger.Debug("page rendered",
		zap.String("encoding", encoding),
		zap.Int("linesFetched", result.Stats.LinesFetched),
		zap.Int("linesGenerated", result.Stats.LinesGenerated),
		zap.Int("charsFetched", result.Stats.CharsFetched),
		zap.Duration("elapsed", env.Now().Sub(start)),
	)

	outPath, err := writePage(flags, cfg, env, result.HTML)
	if err != nil {
		return nil, err
	}
	env.Logger.Debug("page written", zap.String("path", outPath), zap.Int("bytes", len(result.HTML)))

	openPage(ctx, cfg, env, outPath, flags.test)

	var lines []string
	if flags.stat {
		lines = append(lines, result.Stats.Lines()...)
	}
	if flags.verbose {
		lines = append(lines, "output: "+outPath)
	}
	return lines, nil
}

// loadConfig builds the effective configuration.
// Precedence: CLI flags > env vars > config file > defaults
func loadConfig(flags *cliFlags) (*config.Config, error) {
	env := loadEnvConfig()

	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags copies flags that were given into cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.encoding != "" {
		cfg.Input.Encoding = flags.encoding
	}
	if flags.title != "" {
		cfg.Page.Title = flags.title
	}
	if flags.template != "" {
		cfg.Page.Template = flags.template
	}
	if flags.style != "" {
		cfg.Page.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Page.AssetPath = flags.assetPath
	}
	if flags.trim {
		cfg.Render.TrimTrailingSpace = true
	}
}

// openInput returns the input reader and the default page title.
// A missing --input file fails before any output file exists.
func openInput(flags *cliFlags, cfg *config.Config, env *Environment) (io.Reader, string, func(), error) {
	title := cfg.Page.Title

	if flags.input == "" {
		if title == "" {
			title = stdinTitle
		}
		return env.Stdin, title, func() {}, nil
	}

	if !fileutil.FileExists(flags.input) {
		return nil, "", nil, fmt.Errorf("%w: %s%s", ErrInputNotFound, flags.input, hints.ForInputNotFound())
	}
	f, err := os.Open(flags.input) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, "", nil, fmt.Errorf("%w: %v", www.ErrReadInput, err)
	}
	if title == "" {
		title = filepath.Base(flags.input)
	}
	return f, title, func() { _ = f.Close() }, nil
}

// writePage writes html to --output atomically, or to a new temp file.
// Returns the absolute path written.
func writePage(flags *cliFlags, cfg *config.Config, env *Environment, html []byte) (string, error) {
	if flags.output != "" {
		path, err := filepath.Abs(flags.output)
		if err != nil {
			return "", fmt.Errorf("%w: %v", www.ErrWriteOutput, err)
		}
		if err := fileutil.WriteAtomic(path, html); err != nil {
			return "", fmt.Errorf("%w: %v%s", www.ErrWriteOutput, err, hints.ForOutputDirectory())
		}
		return path, nil
	}

	dir := cfg.Output.Dir
	if dir == "" {
		dir = env.TempDir
	}
	path, _, err := fileutil.WriteTempFile(dir, html, fileutil.PageSuffix)
	if err != nil {
		return "", fmt.Errorf("%w: %v%s", www.ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

// openPage hands the page to the viewer, or to viewer.Noop under --test.
// Failures are warnings: the page exists and its path is reported either way.
func openPage(ctx context.Context, cfg *config.Config, env *Environment, path string, test bool) {
	opener := env.Opener
	switch {
	case test:
		opener = viewer.Noop{}
	case cfg.Viewer.Command != "":
		cmd, err := viewer.Command(cfg.Viewer.Command)
		if err != nil {
			fmt.Fprintf(env.Stderr, "warning: %v%s\n", err, hints.ForViewer())
			return
		}
		opener = cmd
	}
	if opener == nil {
		return
	}

	start := env.Now()
	handled, err := opener.Open(ctx, path)
	if err != nil {
		fmt.Fprintf(env.Stderr, "warning: %v%s\n", err, hints.ForViewer())
		return
	}
	env.Logger.Debug("viewer", zap.Bool("handled", handled), zap.Duration("elapsed", env.Now().Sub(start)))
	if u, ok := opener.(viewer.Unsupported); ok {
		env.Logger.Debug("no viewer launcher", zap.String("platform", u.Platform))
	}
}

// withInputHint appends a hint to decoding errors.
func withInputHint(err error) error {
	switch {
	case errors.Is(err, www.ErrUnknownEncoding):
		return fmt.Errorf("%w%s", err, hints.ForUnknownEncoding(charset.Names()))
	case errors.Is(err, www.ErrMalformedInput):
		return fmt.Errorf("%w%s", err, hints.ForMalformedInput())
	}
	return err
}

// withAssetHint appends a hint to template and style errors.
func withAssetHint(err error) error {
	switch {
	case errors.Is(err, www.ErrTemplateNotFound):
		return fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(assets.TemplateNames()))
	case errors.Is(err, www.ErrStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
	case errors.Is(err, www.ErrMarkerMissing),
		errors.Is(err, www.ErrMarkerDuplicate),
		errors.Is(err, www.ErrMarkerOutsideBody):
		return fmt.Errorf("%w%s", err, hints.ForMarker())
	}
	return err
}
