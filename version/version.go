// Package version holds build information of the rdfstore binaries.
package version

import "fmt"

var (
	Version = "0.1.0"

	// git hash should be filled by:
	// 	go build -ldflags="-X github.com/cayleygraph/rdfstore/version.GitHash=xxxx"

	GitHash   = "dev snapshot"
	BuildDate string
)

// String describes the current build.
func String() string {
	s := fmt.Sprintf("rdfstore %s (%s)", Version, GitHash)
	if BuildDate != "" {
		s += " built " + BuildDate
	}
	return s
}
