package squall

import (
	"os"
	"path/filepath"
	"testing"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(lookupMap(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, DefaultConfig())
	}
	if cfg.Gravity != DefaultGravity {
		t.Errorf("Gravity = %v, want %v", cfg.Gravity, DefaultGravity)
	}
}

func TestParseConfigValues(t *testing.T) {
	cfg, err := ParseConfig(lookupMap(map[string]string{
		EnvTitle:            "storm",
		EnvDebug:            " 2 ",
		EnvScreenResolution: "640x400",
		EnvWindowSize:       "1280x800",
		EnvPlayArea:         "2000x600",
		EnvGravity:          "1.5",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Title:      "storm",
		Debug:      2,
		Resolution: Size{640, 400},
		WindowSize: Size{1280, 800},
		PlayArea:   Size{2000, 600},
		Gravity:    1.5,
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
	w := cfg.World()
	if w.Gravity != 1.5 || w.PlayArea != (Size{2000, 600}) {
		t.Errorf("World = %+v", w)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{EnvDebug, "loud"},
		{EnvScreenResolution, "640"},
		{EnvWindowSize, "ax3"},
		{EnvPlayArea, "0x100"},
		{EnvGravity, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if _, err := ParseConfig(lookupMap(map[string]string{tt.key: tt.val})); err == nil {
				t.Errorf("%s=%q accepted, want error", tt.key, tt.val)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"320x200", Size{320, 200}, false},
		{" 64x48 ", Size{64, 48}, false},
		{"320", Size{}, true},
		{"x200", Size{}, true},
		{"320x", Size{}, true},
		{"-1x5", Size{}, true},
		{"10x0", Size{}, true},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	data := "SQUALL_TITLE=from-file\nSQUALL_PLAY_AREA=640x480\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvTitle, "from-env")
	t.Cleanup(func() { os.Unsetenv(EnvPlayArea) })

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "from-env" {
		t.Errorf("Title = %q, want environment value to win", cfg.Title)
	}
	if cfg.PlayArea != (Size{640, 480}) {
		t.Errorf("PlayArea = %v, want 640x480 from file", cfg.PlayArea)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("explicit missing file should be an error")
	}
}
