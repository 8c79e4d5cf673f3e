// Package version reports the pegada build version.
package version

import "runtime/debug"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/pegada/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Overwritten by the linker.
var version = ""

// devVersion is reported when neither the linker nor the module build
// information supplies a version.
const devVersion = "dev"

// GetVersion returns the linked version, the module version from the build
// information, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}
