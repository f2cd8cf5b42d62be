package main

import (
	"os"

	"github.com/hasbyte1/go-collection/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
