// Package cmd holds the argtypes build metadata.
//
// The values are overwritten at link time, for example:
//
//	go build -ldflags "-X github.com/thoreinstein/argtypes/cmd.Version=v1.2.0"
package cmd

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is when the binary was built.
	Date = "unknown"
)
