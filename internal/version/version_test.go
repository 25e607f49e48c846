package version

import (
	"runtime"
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origV, origC, origD, origNoColor := Version, GitCommit, BuildDate, color.NoColor
	Version, GitCommit, BuildDate = v, commit, date
	color.NoColor = true
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origV, origC, origD
		color.NoColor = origNoColor
	})
}

func TestString(t *testing.T) {
	platform := " " + runtime.GOOS + "/" + runtime.GOARCH
	cases := []struct {
		version, commit, date string
		want                  string
	}{
		{"0.1.0-dev", "", "", "wrought 0.1.0-dev" + platform},
		{"1.2.3", "1234567890abcdef", "", "wrought 1.2.3 (1234567890ab)" + platform},
		{"1.2.3", "abc", "2026-01-15", "wrought 1.2.3 (abc) built 2026-01-15" + platform},
		{"nightly", "", "", "wrought nightly" + platform},
	}
	for _, c := range cases {
		withVersion(t, c.version, c.commit, c.date)
		if got := String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestColoredKeepsSuffixPlain(t *testing.T) {
	withVersion(t, "0.1.0-rc.1", "", "")
	color.NoColor = false
	got := Colored()
	if got == Version {
		t.Fatal("expected colour codes")
	}
	if suffix := "-rc.1"; got[len(got)-len(suffix):] != suffix {
		t.Errorf("Colored() = %q", got)
	}
}
