package action

import (
	"fmt"

	"github.com/daryltucker/echoer/internal/model"
)

// EnvVar prints the value an environment variable had when the action was built.
type EnvVar struct {
	Name  string
	Value string
}

// NewEnvVar resolves name immediately. An unset variable is a
// *model.ConfigurationError; a variable set to the empty string is valid.
func NewEnvVar(name string, lookup model.LookupFunc) (*EnvVar, error) {
	value, ok := lookup(name)
	if !ok {
		return nil, &model.ConfigurationError{Name: name}
	}
	return &EnvVar{Name: name, Value: value}, nil
}

func (e *EnvVar) Run(rt *model.Runtime) error {
	return rt.Console.WriteLine(model.Stdout, e.Value)
}

func (e *EnvVar) Describe() string {
	return fmt.Sprintf("EnvVar '%s' = '%s'.", e.Name, e.Value)
}
