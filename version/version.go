// Package version carries build metadata injected via ldflags.
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version with commit and build date when they are known.
func Full() string {
	if Version == "dev" && GitCommit == "unknown" {
		return "dev"
	}
	return Version + " (" + GitCommit + ", " + BuildDate + ")"
}
