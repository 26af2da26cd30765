// Package main is the entry point for the sweep CLI.
package main

import "sweep.dev/pkg/sweep/cmd"

func main() {
	cmd.Execute()
}
