package main

import (
	"fmt"
	"os"

	"randomizer-tools/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
