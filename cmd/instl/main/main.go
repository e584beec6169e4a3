package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/instl/cmd/instl"
	"github.com/arthur-debert/instl/pkg/style"
)

func main() {
	rootCmd := instl.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Every fatal error is a single line on stderr; the prefix is
		// styled only when stderr is a terminal.
		fmt.Fprintf(os.Stderr, "%s %v\n", style.FatalPrefix(), err)
		os.Exit(1)
	}
}
