package main

import (
	"os"

	"github.com/K1ta141k/skillsense-hr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
