package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	t.Run("development build", func(t *testing.T) {
		Version, Commit, Date = "dev", "unknown", "unknown"
		got := String()
		if !strings.HasPrefix(got, "huepick version dev (") {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("release build", func(t *testing.T) {
		Version, Commit, Date = "1.2.3", "0123456789abcdef", "2025-01-01T00:00:00Z"
		got := String()
		if !strings.Contains(got, "commit: 01234567") || !strings.Contains(got, "built: 2025-01-01T00:00:00Z") {
			t.Errorf("String() = %q", got)
		}
		if Short() != "1.2.3" {
			t.Errorf("Short() = %q", Short())
		}
	})
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo() = %+v", info)
	}
}
