package main

import (
	"os"

	"github.com/BrandonKowalski/navstate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
