package version

import "fmt"

// Overridden at build time via -ldflags.
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildTime = "development"
)

// String returns the version with a leading v, plus the short commit
// when one was stamped in.
func String() string {
	if GitCommit != "unknown" {
		return fmt.Sprintf("v%s (%s)", Version, GitCommit)
	}
	return fmt.Sprintf("v%s", Version)
}

func Get() map[string]string {
	return map[string]string{
		"version":   Version,
		"gitCommit": GitCommit,
		"buildTime": BuildTime,
	}
}
