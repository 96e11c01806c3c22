package version

import (
	"strings"
	"testing"
)

func withBuildVars(t *testing.T, version, commit, date string, vcs func() (string, bool)) {
	t.Helper()
	oldV, oldC, oldD, oldVCS := Version, Commit, BuildDate, readVCS
	t.Cleanup(func() { Version, Commit, BuildDate, readVCS = oldV, oldC, oldD, oldVCS })
	Version, Commit, BuildDate, readVCS = version, commit, date, vcs
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name       string
		commit     string
		vcs        func() (string, bool)
		wantCommit string
		wantDirty  bool
	}{
		{
			name:       "ldflags commit wins",
			commit:     "abc123",
			vcs:        func() (string, bool) { return "fromvcs", true },
			wantCommit: "abc123",
		},
		{
			name:       "falls back to vcs and truncates",
			vcs:        func() (string, bool) { return "0123456789abcdef0123", true },
			wantCommit: "0123456789ab",
			wantDirty:  true,
		},
		{
			name:       "no metadata",
			vcs:        func() (string, bool) { return "", false },
			wantCommit: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildVars(t, "1.0.0", tt.commit, "2026-10-01", tt.vcs)

			info := Info()
			if info.Commit != tt.wantCommit || info.Modified != tt.wantDirty {
				t.Errorf("got commit=%q modified=%v, want %q/%v", info.Commit, info.Modified, tt.wantCommit, tt.wantDirty)
			}
			if info.Version != "1.0.0" || info.GoVersion == "" {
				t.Errorf("unexpected info %+v", info)
			}
		})
	}
}

func TestString(t *testing.T) {
	withBuildVars(t, "dev", "", "", func() (string, bool) { return "deadbeef", true })

	s := String()
	for _, want := range []string{"Spacecake dev", "deadbeef+dirty", "built[local]"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
