package main

import (
	"os"

	"github.com/wildbearsoftware/wikify/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
