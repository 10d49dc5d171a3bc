// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.qsh.dev/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version identifies the version of qsh. On development commits, it
// identifies the next release.
const Version = "v0.3.0"

// VersionSuffix is appended to Version to build the full version string. It
// can be overridden when building qsh.
var VersionSuffix = "-dev.unknown"

// Reproducible identifies whether the build is reproducible. It can be
// overridden when building qsh.
var Reproducible = "false"

// FullVersion returns Version followed by VersionSuffix. When the suffix is
// not set at build time and the binary carries a VCS revision, the revision
// is used instead.
func FullVersion() string {
	suffix := VersionSuffix
	if suffix == "-dev.unknown" {
		if rev := vcsRevision(); rev != "" {
			suffix = "-dev." + rev
		}
	}
	return Version + suffix
}

// String returns a multi-line description of the build.
func String() string {
	return fmt.Sprintf("Version: %s\nGo version: %s\nReproducible build: %s\n",
		FullVersion(), runtime.Version(), Reproducible)
}

var readBuildInfo = debug.ReadBuildInfo

func vcsRevision() string {
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			rev := setting.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return rev
		}
	}
	return ""
}
