package main

import (
	"os"

	"vms/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
