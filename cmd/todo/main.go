package main

import (
	"os"

	"github.com/idilsaglam/todoview/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
