// Package main is the single-binary entrypoint for took.
// took tracks time spent on named tasks from the command line.
package main

import "github.com/joaohenriqueluz/took/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
