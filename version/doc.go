// Package version provides build version information for the client kit.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/rochers/feoblog/version.Version=1.0.0"
package version
