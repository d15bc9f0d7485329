package main

import (
	"os"

	"github.com/jobdeck/flaggate/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
