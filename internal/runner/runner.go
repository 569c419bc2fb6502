// Package runner orchestrates the read -> parse -> write -> output pipeline
// behind the hyprconf command.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/donaldgifford/hyprconf/internal/config"
	"github.com/donaldgifford/hyprconf/internal/formatter"
	"github.com/donaldgifford/hyprconf/internal/logging"
	"github.com/donaldgifford/hyprconf/internal/model"
	"github.com/donaldgifford/hyprconf/internal/parser"
	"github.com/donaldgifford/hyprconf/internal/rules"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

// stdinName labels standard input in messages and diffs.
const stdinName = "<stdin>"

// ErrNoConfig is reported when no input was given and no compositor config
// could be found in the standard locations.
var ErrNoConfig = errors.New("no hyprland.conf found; pass a file or pipe one on stdin")

// Options configures the runner behavior.
type Options struct {
	Files []string

	// Check exits 1 if any input is not in canonical form.
	Check bool
	// Diff prints a unified diff between the input and its canonical form.
	Diff bool
	// Write rewrites each file in canonical form.
	Write bool
	// Validate parses each input and reports lint findings.
	Validate bool
	// Generate prints a configuration holding every default.
	Generate bool
	// Dump exports the parsed configuration as "yaml" or "toml".
	Dump string
	// Watch re-runs the selected mode whenever an input file changes.
	Watch bool
	// UseDefault reads the compositor config from its standard location
	// when Files is empty, instead of standard input.
	UseDefault bool

	ConfigPath string
	Strict     bool
	Quiet      bool
	Verbose    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the pipeline and returns an exit code. ctx only matters in
// watch mode, which runs until it is canceled.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "hyprconf: %v\n", err)
		return ExitError
	}

	r := &run{opts: opts, cfg: cfg, log: newLogger(opts, cfg)}

	if opts.Generate {
		writeOut(opts.Stdout, formatter.Write(model.New(), &cfg.Writer))
		return ExitOK
	}

	files := opts.Files
	if len(files) == 0 && (opts.UseDefault || opts.Watch) {
		path := config.FindHyprlandConfig()
		if path == "" {
			writeErr(opts.Stderr, "hyprconf: %v\n", ErrNoConfig)
			return ExitError
		}
		r.log.Debug("using default config", "path", path)
		files = []string{path}
	}

	if opts.Watch {
		return r.watch(ctx, files)
	}

	// stdin mode: no files given.
	if len(files) == 0 {
		return r.stdin()
	}

	exitCode := ExitOK
	for _, path := range files {
		code := r.file(path)
		if code > exitCode {
			exitCode = code
		}
	}
	return exitCode
}

func newLogger(opts *Options, cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	switch {
	case opts.Verbose:
		level = "debug"
	case opts.Quiet:
		level = "error"
	}
	return logging.New(level, cfg.Log.Format, opts.Stderr)
}

// run carries the state shared by every input of one invocation.
type run struct {
	opts *Options
	cfg  *config.Config
	log  *slog.Logger
}

func (r *run) parserOptions(path string) parser.Options {
	return parser.Options{
		Strict: r.opts.Strict || r.cfg.Parser.Strict,
		Logger: r.log.With("file", path),
	}
}

func (r *run) stdin() int {
	src, err := io.ReadAll(r.opts.Stdin)
	if err != nil {
		writeErr(r.opts.Stderr, "hyprconf: reading stdin: %v\n", err)
		return ExitError
	}

	hc, err := parser.ParseWithOptions(string(src), r.parserOptions(stdinName))
	if err != nil {
		writeErr(r.opts.Stderr, "hyprconf: %s: %v\n", stdinName, err)
		return ExitError
	}
	return r.process(stdinName, string(src), hc)
}

func (r *run) file(path string) int {
	if r.opts.Verbose {
		writeErr(r.opts.Stderr, "%s\n", path)
	}

	src, err := parser.ReadSource(path)
	if err != nil {
		writeErr(r.opts.Stderr, "hyprconf: %v\n", err)
		return ExitError
	}

	hc, err := parser.ParseSource(path, src, r.parserOptions(path))
	if err != nil {
		writeErr(r.opts.Stderr, "hyprconf: %v\n", err)
		return ExitError
	}

	code := r.process(path, src, hc)
	if code != ExitOK || !r.opts.Write || r.opts.Validate || r.opts.Dump != "" {
		return code
	}

	// Write mode.
	if formatter.Write(hc, &r.cfg.Writer) == src {
		return ExitOK
	}
	if err := formatter.WriteFile(hc, path, &r.cfg.Writer); err != nil {
		writeErr(r.opts.Stderr, "hyprconf: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// process runs the selected mode over one parsed input.
func (r *run) process(name, input string, hc *model.Config) int {
	switch {
	case r.opts.Validate:
		return r.validate(name, hc)
	case r.opts.Dump != "":
		data, err := formatter.Dump(hc, r.opts.Dump)
		if err != nil {
			writeErr(r.opts.Stderr, "hyprconf: %v\n", err)
			return ExitError
		}
		writeOut(r.opts.Stdout, string(data))
		return ExitOK
	}

	output := formatter.Write(hc, &r.cfg.Writer)

	if r.opts.Check {
		if input != output {
			if !r.opts.Quiet {
				writeErr(r.opts.Stderr, "%s\n", name)
			}
			return ExitFormatDiff
		}
		return ExitOK
	}

	if r.opts.Diff {
		d := unifiedDiff(name, input, output)
		if d != "" {
			writeOut(r.opts.Stdout, d)
			return ExitFormatDiff
		}
		return ExitOK
	}

	if r.opts.Write && name != stdinName {
		return ExitOK
	}
	writeOut(r.opts.Stdout, output)
	return ExitOK
}

// validate reports lint findings. Warnings are suppressed by Quiet; any
// error-severity finding makes the exit code 1.
func (r *run) validate(name string, hc *model.Config) int {
	if r.excluded(name) {
		r.log.Debug("skipping excluded file", "file", name)
		return ExitOK
	}

	findings := rules.Lint(hc, &r.cfg.Lint)
	for _, f := range findings {
		if r.opts.Quiet && f.Severity != rules.SeverityError {
			continue
		}
		writeErr(r.opts.Stderr, "%s: %s\n", name, f)
	}
	if rules.HasErrors(findings) {
		return ExitFormatDiff
	}
	return ExitOK
}

// excluded reports whether path matches one of the lint exclude globs,
// either as given or by base name.
func (r *run) excluded(path string) bool {
	for _, pattern := range r.cfg.Lint.Exclude {
		if ok, _ := filepath.Match(pattern, path); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

// unifiedDiff returns a unified diff between a and b, or "" when they are
// equal.
func unifiedDiff(path, a, b string) string {
	if a == b {
		return ""
	}
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
	if err != nil {
		return fmt.Sprintf("diff %s: %v\n", path, err)
	}
	return d
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
