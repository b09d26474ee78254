package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()

	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestResolve(t *testing.T) {
	vcs := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name     string
		input    Info
		bi       *debug.BuildInfo
		ok       bool
		expected Info
	}{
		{
			name:     "성공: ldflags 값이 우선",
			input:    Info{Version: "v1.2.0", Commit: "f25b8bf", BuildDate: "2025-12-01", BuildNumber: "12"},
			bi:       vcs,
			ok:       true,
			expected: Info{Version: "v1.2.0", Commit: "f25b8bf", BuildDate: "2025-12-01", BuildNumber: "12", DirtyBuild: true},
		},
		{
			name:     "성공: VCS 메타데이터로 보강",
			bi:       vcs,
			ok:       true,
			expected: Info{Version: "v0.3.1", Commit: "0123456789abcdef", BuildDate: "2025-01-02T03:04:05Z", DirtyBuild: true},
		},
		{
			name:     "성공: devel 빌드는 unknown",
			bi:       &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			ok:       true,
			expected: Info{Version: unknown, Commit: unknown},
		},
		{
			name:     "성공: 빌드 정보 없음",
			ok:       false,
			expected: Info{Version: unknown, Commit: unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.bi, tt.ok)

			got := resolve(tt.input)

			tt.expected.GoVersion = runtime.Version()
			tt.expected.OS = runtime.GOOS
			tt.expected.Arch = runtime.GOARCH
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		info     Info
		expected string
	}{
		{"빈 정보", Info{}, "unknown"},
		{"버전만", Info{Version: "v1.0.0", Commit: unknown}, "v1.0.0"},
		{
			"전체 정보",
			Info{Version: "v1.2.0", Commit: "f25b8bf0123", BuildNumber: "12", GoVersion: "go1.24.0", OS: "linux", Arch: "amd64", DirtyBuild: true},
			"v1.2.0+dirty (commit: f25b8bf, build: 12, go1.24.0 linux/amd64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.info.String())
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	info := Get()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, info, Get())

	fields := info.ToFields()
	assert.Equal(t, info.Version, fields["version"])
	assert.Equal(t, info.DirtyBuild, fields["dirty_build"])
}
