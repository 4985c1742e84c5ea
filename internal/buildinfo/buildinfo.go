// Package buildinfo carries release metadata set at link time, e.g.
//
//	go build -ldflags "-X github.com/aidanlsb/notebook/internal/buildinfo.Version=1.2.0"
package buildinfo

// Empty for local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
