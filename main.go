// Package main provides the entry point for the layoutsyn CLI tool.
// It delegates execution to the cmd package to keep the entry point free
// of flag handling and orchestration details.
package main

import (
	"layoutsyn/cmd"
)

func main() {
	cmd.Execute()
}
