package main

import (
	"os"

	"artpiece/cmd/artpiece/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
