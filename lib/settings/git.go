package settings

import (
	"runtime/debug"
)

// GitVersion returns the module version of the binary, or the VCS revision it was built
// from with a "-dirty" suffix for uncommitted changes.
func GitVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	if version := buildInfo.Main.Version; version != "" && version != "(devel)" {
		return version
	}

	vcs := make(map[string]string, len(buildInfo.Settings))
	for _, setting := range buildInfo.Settings {
		vcs[setting.Key] = setting.Value
	}
	revision := vcs["vcs.revision"]
	if revision != "" && vcs["vcs.modified"] == "true" {
		return revision + "-dirty"
	}
	return revision
}
