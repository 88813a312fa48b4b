package main

import (
	"os"

	"github.com/abhisek/wordz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
