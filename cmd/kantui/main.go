package main

import (
	"os"

	"github.com/gavdaly/kantui/cmd/kantui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
