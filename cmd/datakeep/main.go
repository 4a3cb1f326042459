package main

import (
	"os"

	"datakeep/cmd/datakeep/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
