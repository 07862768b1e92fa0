package main

import (
	"fmt"
	"os"

	"github.com/de-tools/retention-atlas/pkg/runtime/terminal"
	"github.com/de-tools/retention-atlas/pkg/services/baseline"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: baseline.NewDefaultRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
