package main

import (
	"os"

	"github.com/njchilds90/gainsym/cmd/gainsym/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
