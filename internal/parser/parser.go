/*
PURPOSE:
  Translates the raw command-line tokens into a model.Program: an ordered
  list of actions plus the help and preview switches.

REQUIREMENTS:
  User-specified:
  - --help and --debug are standalone switches.
  - Value flags (-out, -err, -env, -wait, -exit) take exactly one parameter.
  - Flags may repeat; order of appearance is execution order.
  - Unknown tokens abort parsing before any command runs.

  Implementation-discovered:
  - A value flag in the last position has no parameter and is dropped
    without error.
  - Environment lookups happen here, at construction time, so a missing
    variable fails before anything executes.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/action (Registry), internal/model

ERROR HANDLING:
  - *model.ParseError for unknown tokens.
  - Construction errors from the registry are returned unchanged.

IMPLEMENTATION RULES:
  - Single cursor, left to right. No partial Program is ever returned.

USAGE:
  prog, err := parser.New(parser.WithLookup(os.LookupEnv)).Parse(os.Args[1:])
*/

package parser

import (
	"os"

	"github.com/daryltucker/echoer/internal/action"
	"github.com/daryltucker/echoer/internal/model"
	"github.com/daryltucker/echoer/internal/output"
)

const (
	FlagHelp  = "--help"
	FlagDebug = "--debug"
)

// Parser turns command-line tokens into a model.Program.
type Parser struct {
	registry action.Registry
	lookup   model.LookupFunc
}

// Option configures a Parser.
type Option func(*Parser)

// WithLookup replaces the environment lookup used by -env.
func WithLookup(lookup model.LookupFunc) Option {
	return func(p *Parser) { p.lookup = lookup }
}

// WithRegistry replaces the value-flag table.
func WithRegistry(r action.Registry) Option {
	return func(p *Parser) { p.registry = r }
}

// New returns a Parser using the default registry and os.LookupEnv.
func New(opts ...Option) *Parser {
	p := &Parser{
		registry: action.DefaultRegistry(),
		lookup:   os.LookupEnv,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse scans args left to right. Standalone flags toggle a boolean; value
// flags consume the following token and append one action. A value flag in
// the last position is dropped. The first unknown token or failing
// construction aborts parsing and no Program is returned.
func (p *Parser) Parse(args []string) (*model.Program, error) {
	prog := &model.Program{}
	env := action.Env{Lookup: p.lookup}

	for i := 0; i < len(args); {
		name := args[i]
		i++

		switch name {
		case FlagHelp:
			prog.HelpRequested = true
			continue
		case FlagDebug:
			prog.PreviewOnly = true
			continue
		}

		build, ok := p.registry[name]
		if !ok {
			return nil, &model.ParseError{Token: name}
		}
		if i >= len(args) {
			output.Logger.Debug("Dropping value flag without parameter", "flag", name)
			break
		}

		param := args[i]
		i++
		a, err := build(param, env)
		if err != nil {
			return nil, err
		}
		prog.Actions = append(prog.Actions, a)
	}

	return prog, nil
}

// Parse parses args with a default Parser.
func Parse(args []string) (*model.Program, error) {
	return New().Parse(args)
}
