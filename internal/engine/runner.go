/*
PURPOSE:
  Runs a parsed Program: prints usage, previews, or executes its actions.

REQUIREMENTS:
  User-specified:
  - Help takes absolute precedence over every other flag.
  - Preview mode describes each action and performs none of them.
  - Actions run strictly in order; an Exit ends the run.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/model, internal/output

ERROR HANDLING:
  - The first failing action stops the run; its error is returned wrapped
    with the action's position and description.
  - model.ErrHalt is a successful stop, not a failure.

IMPLEMENTATION RULES:
  - Single sequential flow. No goroutines.
*/

package engine

import (
	"errors"
	"fmt"

	"github.com/daryltucker/echoer/internal/model"
	"github.com/daryltucker/echoer/internal/output"
)

// Run executes prog against rt. usage is written to stdout, followed by a
// newline, when help was requested.
func Run(prog *model.Program, rt *model.Runtime, usage string) error {
	if prog.HelpRequested {
		return rt.Console.WriteLine(model.Stdout, usage)
	}

	for i, a := range prog.Actions {
		if prog.PreviewOnly {
			if err := rt.Console.WriteLine(model.Stdout, a.Describe()); err != nil {
				return fmt.Errorf("failed to describe action %d: %w", i+1, err)
			}
			continue
		}

		output.Logger.Debug("Running action", "index", i+1, "action", a.Describe())
		err := a.Run(rt)
		if errors.Is(err, model.ErrHalt) {
			output.Logger.Debug("Execution halted", "index", i+1, "skipped", len(prog.Actions)-i-1)
			return nil
		}
		if err != nil {
			return fmt.Errorf("action %d (%s) failed: %w", i+1, a.Describe(), err)
		}
	}

	return nil
}
