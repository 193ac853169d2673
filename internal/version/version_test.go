package version

import (
	"runtime/debug"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	var info Info
	fromBuildInfo(&info, bi)

	if info.Version != "v1.2.0" {
		t.Errorf("Version = %q, want v1.2.0", info.Version)
	}
	if info.Commit != "0123456" {
		t.Errorf("Commit = %q, want 0123456", info.Commit)
	}
	if got := info.String(); got != "v1.2.0 (commit: 0123456-dirty)" {
		t.Errorf("String() = %q", got)
	}
}

func TestFromBuildInfoKeepsLdflags(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}},
	}
	info := Info{Version: "v9.9.9", Commit: "cafe"}
	fromBuildInfo(&info, bi)

	if info.Version != "v9.9.9" || info.Commit != "cafe" {
		t.Errorf("ldflags values overwritten: %+v", info)
	}
}

func TestGetFallbacks(t *testing.T) {
	info := Get()
	if info.Version == "" || info.Commit == "" {
		t.Errorf("Get() left empty fields: %+v", info)
	}
	if info.Platform == "" || info.GoVersion == "" {
		t.Errorf("Get() missing runtime info: %+v", info)
	}
}
