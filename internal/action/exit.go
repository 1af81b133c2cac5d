package action

import (
	"fmt"

	"github.com/daryltucker/echoer/internal/model"
)

// Exit terminates the process with a fixed code.
type Exit struct {
	Code int
}

func NewExit(code int) *Exit {
	return &Exit{Code: code}
}

// Run hands the code to the runtime's exit hook. The production hook never
// returns; ErrHalt stops the runner when a test hook does.
func (e *Exit) Run(rt *model.Runtime) error {
	rt.Exit(e.Code)
	return model.ErrHalt
}

func (e *Exit) Describe() string {
	return fmt.Sprintf("Exit with code %d.", e.Code)
}
