package version

import "fmt"

// These variables are overridden at build time using -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
)

// String renders the build identity for the startup log line.
func String() string {
	if Date == "" {
		return fmt.Sprintf("%s (%s)", Version, Commit)
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
