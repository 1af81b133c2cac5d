/*
PURPOSE:
  Defines the core types shared by the parser, the actions and the runner.
  An Action is one unit of deferred work; a Program is the parsed result of
  a whole command line.

REQUIREMENTS:
  User-specified:
  - Every action can either be run or described.
  - Describing never has side effects.

  Implementation-discovered:
  - Side effects (console, sleep, exit) go through Runtime so tests can
    replace them.

ARCHITECTURE INTEGRATION:
  - Used by: internal/action, internal/parser, internal/engine, internal/cli
  - Shared across boundaries.

ERROR HANDLING:
  - See errors.go.

IMPLEMENTATION RULES:
  - Actions are immutable once constructed.
  - A Program is never mutated after parsing completes.

RELATED FILES:
  - internal/model/errors.go
  - internal/action/*.go
*/

package model

import (
	"time"
)

// Destination selects the console stream a line is written to.
type Destination int

const (
	Stdout Destination = iota
	Stderr
)

func (d Destination) String() string {
	if d == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Console writes whole lines to one of the standard streams.
type Console interface {
	WriteLine(dest Destination, text string) error
}

// LookupFunc resolves an environment variable, reporting whether it is set.
type LookupFunc func(name string) (string, bool)

// Runtime carries the primitive side-effecting services an Action may use.
type Runtime struct {
	Console Console
	Sleep   func(time.Duration)
	Exit    func(code int)
}

// Action is a single unit of work produced from one flag and its parameter.
type Action interface {
	// Run performs the effect.
	Run(rt *Runtime) error
	// Describe returns a one-line summary of what Run would do.
	Describe() string
}

// Program is the validated, ordered result of argument parsing.
type Program struct {
	Actions       []Action
	HelpRequested bool
	PreviewOnly   bool
}
