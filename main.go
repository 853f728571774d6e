// Package main is the entry point for the codeguard CLI.
package main

import "codeguard.dev/pkg/codeguard/cmd"

func main() {
	cmd.Execute()
}
