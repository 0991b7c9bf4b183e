package main

import (
	"os"

	"github.com/tomlshield/tomlshield/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
