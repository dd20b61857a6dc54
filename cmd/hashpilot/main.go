package main

import (
	"os"

	"github.com/hashpilot/hashpilot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
