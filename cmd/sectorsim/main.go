package main

import (
	"os"

	"github.com/rustyeddy/sectorsim/cmd/sectorsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
