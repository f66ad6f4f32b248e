// Package main is the entry point for the incflat CLI.
package main

import "incflat.dev/pkg/incflat/cmd"

func main() {
	cmd.Execute()
}
