package main

import (
	"os"

	"platstub/cmd/platstub/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
