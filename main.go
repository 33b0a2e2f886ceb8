// Package main is the entry point for the reprocheck CLI.
package main

import "reprocheck.dev/pkg/reprocheck/cmd"

func main() {
	cmd.Execute()
}
