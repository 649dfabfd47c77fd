package main

import (
	"os"

	"github.com/Aguiaxxx/carbonyl/internal/cli"
)

func main() {
	exitCode := cli.Run(os.Args)
	os.Exit(exitCode)
}
