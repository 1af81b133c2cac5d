/*
PURPOSE:
  Defines the root Cobra command for echoer and the top-level error
  boundary.

REQUIREMENTS:
  User-specified:
  - Flags are order-sensitive and may repeat; order of appearance is
    execution order.
  - Any failure is printed to stderr as "ERROR: <msg>", plus
    "  Caused by: <inner>" when it wraps another error, and exits 1.

  Implementation-discovered:
  - The grammar (-out, -wait, ... with repeats) is not expressible with
    pflag, so flag parsing is disabled and the raw tokens go to
    internal/parser.
  - Streams, environment lookup, sleep and exit are injected through
    Options so tests never touch the real process.
  - Cobra answers its hidden __complete commands before RunE; those tokens
    bypass cobra's dispatch so the parser rejects them like any other.
  - A bad operator variable (ECHOER_*) never blocks the command line: it is
    logged as a warning and the defaults are used.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/echoer/main.go
  - Calls: internal/config, internal/parser, internal/engine

ERROR HANDLING:
  - Cobra's own error and usage printing is silenced; Main reports errors.

USAGE:
  os.Exit(cli.Execute())

RELATED FILES:
  - internal/cli/help.go - usage text.
*/

package cli

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/daryltucker/echoer/internal/config"
	"github.com/daryltucker/echoer/internal/engine"
	"github.com/daryltucker/echoer/internal/model"
	"github.com/daryltucker/echoer/internal/output"
	"github.com/daryltucker/echoer/internal/parser"
	"github.com/spf13/cobra"
)

// Options holds the process services the command runs against.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Lookup model.LookupFunc
	Sleep  func(time.Duration)
	Exit   func(code int)
}

// StdOptions returns Options bound to the real process.
func StdOptions() Options {
	return Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Lookup: os.LookupEnv,
		Sleep:  time.Sleep,
		Exit:   os.Exit,
	}
}

// app binds a root command to its process services. console is replaced
// once the configuration is loaded so errors are rendered in the
// configured style.
type app struct {
	opts    Options
	console *output.Console
}

// NewRootCmd builds the echoer command over opts.
func NewRootCmd(opts Options) *cobra.Command {
	return newApp(opts).rootCmd()
}

func newApp(opts Options) *app {
	return &app{
		opts:    opts,
		console: output.NewConsole(opts.Stdout, opts.Stderr, output.ColorAuto),
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "echoer <commands> [options]",
		Short: "Echo command-line arguments to stdout/stderr",
		Long:  usageText,
		Args:  cobra.ArbitraryArgs,

		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: a.run,
	}
	cmd.SetOut(a.opts.Stdout)
	cmd.SetErr(a.opts.Stderr)
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	// 1. Load Config
	cfg, err := config.Load(a.opts.Lookup)
	if err != nil {
		cfg = config.DefaultConfig()
		output.SetLogger(output.NewLogger(a.opts.Stderr, cfg.LogLevel))
		output.Logger.Warn("Ignoring environment configuration", "error", err)
	} else {
		output.SetLogger(output.NewLogger(a.opts.Stderr, cfg.LogLevel))
	}
	a.console = output.NewConsole(a.opts.Stdout, a.opts.Stderr, cfg.Color)

	// 2. Parse
	prog, err := parser.New(parser.WithLookup(a.opts.Lookup)).Parse(args)
	if err != nil {
		return err
	}
	output.Logger.Debug("Parsed arguments",
		"actions", len(prog.Actions),
		"help", prog.HelpRequested,
		"preview", prog.PreviewOnly,
	)

	// 3. Execution
	rt := &model.Runtime{
		Console: a.console,
		Sleep:   a.opts.Sleep,
		Exit:    a.opts.Exit,
	}
	return engine.Run(prog, rt, usageText)
}

// Execute runs echoer against the real process and returns its exit code.
func Execute() int {
	return Main(os.Args[1:], StdOptions())
}

// Main runs echoer with args and returns the process exit code. Actions
// that exit the process do so through opts.Exit before Main returns.
func Main(args []string, opts Options) int {
	if args == nil {
		args = []string{}
	}

	a := newApp(opts)
	cmd := a.rootCmd()
	cmd.SetArgs(args)

	var err error
	if isCompletionRequest(args) {
		err = a.run(cmd, args)
	} else {
		err = cmd.Execute()
	}
	if err != nil {
		ReportError(a.console, err)
		return 1
	}
	return 0
}

// isCompletionRequest reports whether cobra would route args to its hidden
// shell-completion command instead of RunE.
func isCompletionRequest(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd
}

// ReportError prints err in the error style, with its direct cause on a
// second line when it wraps one.
func ReportError(c *output.Console, err error) {
	_ = c.Errorln("ERROR: " + err.Error())
	if inner := errors.Unwrap(err); inner != nil {
		_ = c.Errorln("  Caused by: " + inner.Error())
	}
}
