// Package main provides the numguess command.
package main

import (
	"os"

	"github.com/leapstack-labs/numguess/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
