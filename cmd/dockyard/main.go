package main

import (
	"github.com/bnema/dockyard/internal/cli/cmd"
	"github.com/bnema/dockyard/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
	})
	cmd.Execute()
}
