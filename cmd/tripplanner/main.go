// Package main provides the entry point for the tripplanner CLI.
package main

import (
	"fmt"
	"os"

	"wanderly.app/trip-planner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
