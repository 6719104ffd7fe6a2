// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the release and VCS state embedded by the Go build.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns the version string derived from build info: the module
// release when one is stamped, plus the short VCS revision and a "(dirty)"
// marker for modified trees. It returns "dev" when nothing is available.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	return describe(info)
}

func describe(info *debug.BuildInfo) string {
	release := info.Main.Version
	if release == "" || release == "(devel)" {
		release = "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return release
	}
	if modified {
		return fmt.Sprintf("%s+%s (dirty)", release, revision)
	}
	return fmt.Sprintf("%s+%s", release, revision)
}
