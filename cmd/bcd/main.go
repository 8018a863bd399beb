// Command bcd converts unsigned integers to and from packed BCD.
package main

import (
	"github.com/calebcase/bcd/internal/cli"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.Version = version
	cli.Commit = commit

	cli.Execute(cli.NewRootCommand())
}
