package bitbake

import (
	"testing"

	"github.com/hehos/jetson-hooks/internal/config"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"/repo/sources/meta-oe", "'/repo/sources/meta-oe'"},
		{"with space", "'with space'"},
		{"it's", `'it'\''s'`},
		{"$(rm -rf /)", "'$(rm -rf /)'"},
		{"", "''"},
	}

	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnvFromSettings(t *testing.T) {
	t.Parallel()

	env := EnvFromSettings(config.Default("/repo"))
	want := Env{
		Shell:      "/bin/bash",
		TopDir:     "/repo",
		InitScript: "/repo/sources/poky/oe-init-build-env",
		BuildDir:   "/repo/build-jetson",
	}
	if env != want {
		t.Errorf("EnvFromSettings() = %+v, want %+v", env, want)
	}
}

func TestInvocations(t *testing.T) {
	t.Parallel()

	env := EnvFromSettings(config.Default("/repo"))
	const source = "source '/repo/sources/poky/oe-init-build-env' '/repo/build-jetson'"

	tests := []struct {
		name       string
		inv        Invocation
		wantName   string
		wantScript string
	}{
		{
			name:       "init",
			inv:        env.Init(),
			wantName:   "init",
			wantScript: source,
		},
		{
			name:       "add layer",
			inv:        env.AddLayer("/repo/sources/meta-tegra"),
			wantName:   "add-layer meta-tegra",
			wantScript: source + " && bitbake-layers add-layer '/repo/sources/meta-tegra'",
		},
		{
			name:       "fetch",
			inv:        env.Fetch("core-image-weston"),
			wantName:   "fetch core-image-weston",
			wantScript: source + " && bitbake 'core-image-weston' --runall=fetch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.inv.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tt.inv.Name, tt.wantName)
			}
			if tt.inv.Script != tt.wantScript {
				t.Errorf("Script = %q, want %q", tt.inv.Script, tt.wantScript)
			}
			if tt.inv.Dir != "/repo" {
				t.Errorf("Dir = %q, want /repo", tt.inv.Dir)
			}
			if tt.inv.Shell != "/bin/bash" {
				t.Errorf("Shell = %q, want /bin/bash", tt.inv.Shell)
			}
		})
	}
}
