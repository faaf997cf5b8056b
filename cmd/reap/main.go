package main

import (
	"fmt"
	"os"

	"github.com/reap-cli/reap/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "reap: %v\n", err)
		os.Exit(1)
	}
}
