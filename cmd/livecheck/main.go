package main

import (
	"os"

	"github.com/dmitrymomot/livecheck/cmd/livecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
