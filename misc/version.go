// Package misc keeps program identity helpers used across the module.
package misc

import (
	"runtime/debug"
)

const appName = "docview"

var (
	version = "development"
	gitHash = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) > 0 {
			gitHash = s.Value
		}
	}
}

// GetAppName returns short program name used for logs, temp files and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version embedded at build time.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision embedded at build time.
func GetGitHash() string {
	return gitHash
}
