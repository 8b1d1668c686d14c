package squall

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-rain", "after-rain"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	g, keys, _ := newTestGame(t)
	if g.cfg.ScreenshotDir != DefaultScreenshotDir {
		t.Errorf("ScreenshotDir = %q, want %q", g.cfg.ScreenshotDir, DefaultScreenshotDir)
	}
	g.Screenshot("a")
	keys.Tap(ebiten.KeyF12)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if len(g.shots) != 2 || g.shots[0] != "a" || g.shots[1] != "f12" {
		t.Errorf("queue = %v, want [a f12]", g.shots)
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{100, 50, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}, 3, 1)
	tests := []struct {
		i    int
		want [4]uint8
	}{
		{0, [4]uint8{199, 99, 0, 128}},
		{1, [4]uint8{10, 20, 30, 255}},
		{2, [4]uint8{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		p := img.Pix[tt.i*4 : tt.i*4+4]
		if p[0] != tt.want[0] || p[1] != tt.want[1] || p[2] != tt.want[2] || p[3] != tt.want[3] {
			t.Errorf("pixel %d = %v, want %v", tt.i, p, tt.want)
		}
	}
}
