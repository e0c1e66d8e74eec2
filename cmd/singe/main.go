package main

import (
	"os"

	"github.com/rofrol/singe/cmd/singe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
