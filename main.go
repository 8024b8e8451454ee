package main

import (
	"os"

	"github.com/stepwiselabs/stepwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
