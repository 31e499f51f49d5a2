package main

import (
	"os"

	"github.com/qrt-closure/qrtrecon/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
