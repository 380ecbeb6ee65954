// Package version carries build metadata injected at link time via
// -ldflags, e.g.
//
//	go build -ldflags "-X .../internal/version.GitSHA=$(git rev-parse --short HEAD)"
package version

var (
	// Version is the current release version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)
