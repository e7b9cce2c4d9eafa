package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vtscribe/vtscribe/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// ExitErrors were already reported by the failing command; anything
		// else (flag parsing, usage) still needs printing.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(cli.ExitCommandError)
		}
		os.Exit(exitErr.Code)
	}
}
