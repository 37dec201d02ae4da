package main

import (
	"os"

	"github.com/mjelva/icontheme/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
