package version

// These variables are set via ldflags during build, e.g.
// -X github.com/philipparndt/cubecard/version.Version=1.2.0
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with the short commit for release builds
func GetFullVersion() string {
	if Version == "dev" || GitCommit == "unknown" {
		return Version
	}
	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return Version + "+" + commit
}
