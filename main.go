package main

import (
	"os"

	"github.com/keedam/preloadquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
