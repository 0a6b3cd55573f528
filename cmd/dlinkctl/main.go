package main

import (
	"os"

	"github.com/napalm-community/dlink/cmd/dlinkctl/commands"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	commands.SetBuildInfo(version, buildTime)
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
