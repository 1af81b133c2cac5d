/*
PURPOSE:
  Maps value-flag names to action constructors.

REQUIREMENTS:
  User-specified:
  - -out and -err build the same Print action, differing only in destination.
  - -env fails at construction time if the variable is unset.
  - -wait and -exit take decimal integers.

  Implementation-discovered:
  - Integer parse failures are ValidationErrors wrapping the strconv error,
    so the entry point can print a "Caused by" line.

ARCHITECTURE INTEGRATION:
  - Used by: internal/parser

ERROR HANDLING:
  - Returns *model.ValidationError or *model.ConfigurationError.

IMPLEMENTATION RULES:
  - Plain lookup table keyed by flag name. No reflection.

MAINTENANCE:
  - Add a Flag constant and a Registry entry for each new command, then
    document it in internal/cli/help.go.
*/

package action

import (
	"strconv"
	"strings"

	"github.com/daryltucker/echoer/internal/model"
)

const (
	FlagOut  = "-out"
	FlagErr  = "-err"
	FlagEnv  = "-env"
	FlagWait = "-wait"
	FlagExit = "-exit"
)

// Env is what a factory may consult while building an action.
type Env struct {
	Lookup model.LookupFunc
}

// Factory builds one action from a flag parameter.
type Factory func(param string, env Env) (model.Action, error)

// Registry maps a value-flag name to its factory.
type Registry map[string]Factory

// DefaultRegistry returns the table of every supported value flag.
func DefaultRegistry() Registry {
	return Registry{
		FlagOut: printTo(model.Stdout),
		FlagErr: printTo(model.Stderr),
		FlagEnv: func(param string, env Env) (model.Action, error) {
			return NewEnvVar(param, env.Lookup)
		},
		FlagWait: func(param string, _ Env) (model.Action, error) {
			n, err := parseInt(FlagWait, param)
			if err != nil {
				return nil, err
			}
			return NewSleep(n)
		},
		FlagExit: func(param string, _ Env) (model.Action, error) {
			n, err := parseInt(FlagExit, param)
			if err != nil {
				return nil, err
			}
			return NewExit(n), nil
		},
	}
}

func printTo(dest model.Destination) Factory {
	return func(param string, _ Env) (model.Action, error) {
		return NewPrint(param, dest), nil
	}
}

func parseInt(flag, param string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(param), 10, 32)
	if err != nil {
		return 0, &model.ValidationError{Flag: flag, Value: param, Err: err}
	}
	return int(n), nil
}
