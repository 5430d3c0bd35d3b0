package main

import (
	"os"

	"github.com/notebook-tools/nbversion/internal/cli"
	"github.com/notebook-tools/nbversion/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	versionInfo := config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	if err := cli.Execute(versionInfo); err != nil {
		os.Exit(1)
	}
}
