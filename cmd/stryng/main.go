package main

import (
	"os"

	"github.com/dmitrymomot/stryng/cmd/stryng/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
