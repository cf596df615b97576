package main

import (
	"fmt"
	"os"

	"github.com/Wachary/BioPlus-AI-1.1/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
