package main

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-www/internal/viewer"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, logging and the page viewer.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger

	// Opener shows the generated page unless --test is given or a viewer
	// command is configured.
	Opener viewer.Opener

	// TempDir holds generated pages when output.dir is not set.
	// Empty means os.TempDir.
	TempDir string

	// Context is the parent of the run context. Nil means Background.
	Context context.Context
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: zap.NewNop(),
		Opener: viewer.Default(),
	}
}

// withLogger returns a copy of env using logger.
func (e *Environment) withLogger(logger *zap.Logger) *Environment {
	cp := *e
	cp.Logger = logger
	return &cp
}

// withDefaults returns a copy of env with nil dependencies replaced by
// quiet defaults.
func (e *Environment) withDefaults() *Environment {
	cp := *e
	if cp.Now == nil {
		cp.Now = time.Now
	}
	if cp.Stdin == nil {
		cp.Stdin = os.Stdin
	}
	if cp.Logger == nil {
		cp.Logger = zap.NewNop()
	}
	return &cp
}

func (e *Environment) context() context.Context {
	if e.Context != nil {
		return e.Context
	}
	return context.Background()
}

// newDebugLogger returns a development console logger writing to w.
func newDebugLogger(w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
