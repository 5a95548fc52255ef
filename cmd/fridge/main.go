// Command fridge is the command-line interface to a stored refrigerator.
package main

import (
	"os"

	"github.com/mesh-intelligence/fridge/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
