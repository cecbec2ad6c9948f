package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstant(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	tests := []struct {
		name  string
		value string
	}{
		{"version", info.Version},
		{"commit", info.Commit},
		{"build date", info.BuildDate},
		{"go version", info.GoVersion},
		{"platform", info.Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				t.Errorf("%s is empty", tt.name)
			}
		})
	}

	if !strings.Contains(info.String(), Version) {
		t.Errorf("String() = %q, want it to contain %q", info.String(), Version)
	}
}
