package main

import (
	"os"

	"github.com/msto63/formatkit/cmd/fmtool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
