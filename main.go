// Package main is the entry point of the locatorgen command line.
package main

import "github.com/liuxd6825/locatorgen/cmd"

func main() {
	cmd.Execute()
}
