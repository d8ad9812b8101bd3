package main

import (
	"os"

	"github.com/vilaca/devfinder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
