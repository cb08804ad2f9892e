// Package main is the entry point for the Zephyr playground CLI.
package main

import "zephyr.dev/pkg/playground/cmd"

func main() {
	cmd.Execute()
}
