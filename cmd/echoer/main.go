/*
PURPOSE:
  Entry point for echoer.
  Hands the command-line arguments to the CLI and exits with its status.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o echoer ./cmd/echoer
  ./echoer -out hello -wait 1 -err bye
*/

package main

import (
	"os"

	"github.com/daryltucker/echoer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
