package main

import (
	"os"

	"github.com/katalvlaran/segaug/cmd/segaug/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
