package main

import (
	"os"

	"github.com/rfcpress/rfcpress/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
