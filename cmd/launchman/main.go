package main

import (
	"fmt"
	"os"

	"launchman/internal/cmd"
)

func main() {
	if err := cmd.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
