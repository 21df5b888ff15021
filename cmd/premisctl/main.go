package main

import (
	"os"

	"github.com/jacoelho/premis/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
