package main

import (
	"os"

	"sunsetguide/cmd/guidectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
