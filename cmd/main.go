package main

import (
	"os"

	"github.com/targetscope/targetscope/cmd/targetscope"
)

func main() {
	if err := targetscope.Execute(); err != nil {
		os.Exit(1)
	}
}
