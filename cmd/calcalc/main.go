package main

import (
	"os"

	"github.com/msto63/calcalc/cmd/calcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
