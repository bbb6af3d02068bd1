package main

import (
	"os"

	"food-picker/cli"
)

func main() {
	os.Exit(cli.Execute())
}
