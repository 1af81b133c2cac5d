package action

import (
	"fmt"

	"github.com/daryltucker/echoer/internal/model"
)

// Print writes a line of text to stdout or stderr.
type Print struct {
	Text        string
	Destination model.Destination
}

// NewPrint returns a Print action for the given destination.
func NewPrint(text string, dest model.Destination) *Print {
	return &Print{Text: text, Destination: dest}
}

func (p *Print) Run(rt *model.Runtime) error {
	return rt.Console.WriteLine(p.Destination, p.Text)
}

func (p *Print) Describe() string {
	return fmt.Sprintf("Print '%s' to %s.", p.Text, p.Destination)
}
