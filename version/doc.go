// Package version reports the zipkit build version.
//
// Version, Commit and Date are meant to be set at build time:
//
//	-ldflags "-X github.com/dendrascience/zipkit/version.Version=v1.0.0 -X github.com/dendrascience/zipkit/version.Commit=abc1234"
//
// When they are left at their defaults the values recorded by the Go
// toolchain in the binary's build info are used instead.
package version
