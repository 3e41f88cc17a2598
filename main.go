package main

import (
	"os"

	"github.com/heathj/htmlast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
