// Package main is the entry point for hyprconf.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/donaldgifford/hyprconf/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	check := flag.Bool("check", false, "exit 1 if any input is not in canonical form")
	diffFlag := flag.Bool("diff", false, "print unified diff against the canonical form")
	write := flag.Bool("w", false, "write canonical form back to the file")
	validate := flag.Bool("validate", false, "parse and report lint findings")
	generate := flag.Bool("generate", false, "print a configuration holding every default")
	dump := flag.String("dump", "", "export the parsed configuration as yaml or toml")
	watch := flag.Bool("watch", false, "re-run whenever an input file changes")
	strict := flag.Bool("strict", false, "treat undecodable lines as errors")
	configPath := flag.String("config", "", "path to config file")
	quiet := flag.Bool("q", false, "suppress informational output and lower the log level to error")
	verbose := flag.Bool("v", false, "print files as they are processed and raise the log level to debug")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("hyprconf %s (%s) %s\n", version, commit, date)
		return
	}

	opts := &runner.Options{
		Files:      flag.Args(),
		Check:      *check,
		Diff:       *diffFlag,
		Write:      *write,
		Validate:   *validate,
		Generate:   *generate,
		Dump:       *dump,
		Watch:      *watch,
		UseDefault: stdinIsTerminal(),
		ConfigPath: *configPath,
		Strict:     *strict,
		Quiet:      *quiet,
		Verbose:    *verbose,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runner.Run(ctx, opts)
	stop()
	os.Exit(code)
}

// stdinIsTerminal reports whether nothing is piped in, in which case the
// compositor config is read from its standard location.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hyprconf [flags] [files...]

Parse Hyprland configuration files and print them in canonical form.
With no files, reads from stdin, or from hypr/hyprland.conf in the XDG
config directories when stdin is a terminal.

Flags:
`)
	flag.PrintDefaults()
}
