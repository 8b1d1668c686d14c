package squall

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/goregular"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, 0, color.RGBA{255, 0, 0, 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const playerAnims = "# player animations\n" +
	"player_walk=sprites/player.png;loop;{0,0,16,16,100+16,0,16,16,100}\n" +
	"player_jump=sprites/player.png;once;{16,0,16,16,250}\n"

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"sprites/player.png":  {Data: pngBytes(t, 32, 16)},
		"fonts/regular.ttf":   {Data: goregular.TTF},
		"fonts/broken.ttf":    {Data: []byte("not a font")},
		"anims/player.anim":   {Data: []byte(playerAnims)},
		"anims/short.anim":    {Data: []byte("idle=sprites/player.png;loop\n")},
		"anims/noimage.anim":  {Data: []byte("idle=sprites/missing.png;loop;{0,0,1,1,1}\n")},
		"anims/badframe.anim": {Data: []byte("idle=sprites/player.png;loop;{0,0,1}\n")},
	}
}

func TestResourcesImageCached(t *testing.T) {
	r := NewResources(testFS(t))
	a, err := r.Image("sprites/player.png")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := a.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("bounds = %v, want 32x16", b)
	}
	b, err := r.Image("sprites/player.png")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second Image call should return the cached image")
	}
	if _, err := r.Image("sprites/nope.png"); err == nil {
		t.Error("missing image should fail")
	}
}

func TestResourcesFace(t *testing.T) {
	r := NewResources(testFS(t))
	f, err := r.Face("fonts/regular.ttf", 16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if f == nil {
		t.Fatal("Face returned nil")
	}
	if _, err := r.Face("fonts/regular.ttf", 24); err != nil {
		t.Fatal(err)
	}
	if len(r.sources) != 1 {
		t.Errorf("cached sources = %d, want 1", len(r.sources))
	}
	if _, err := r.Face("fonts/broken.ttf", 16); err == nil {
		t.Error("broken font should fail")
	}
	if _, err := r.Face("fonts/none.ttf", 16); err == nil {
		t.Error("missing font should fail")
	}
}

func TestLoadFace(t *testing.T) {
	if _, err := LoadFace(goregular.TTF, 12); err != nil {
		t.Errorf("LoadFace: %v", err)
	}
	if _, err := LoadFace([]byte{1, 2, 3}, 12); err == nil {
		t.Error("LoadFace accepted garbage")
	}
}

func TestResourcesAnimations(t *testing.T) {
	r := NewResources(testFS(t))
	anims, err := r.Animations("anims/player.anim")
	if err != nil {
		t.Fatalf("Animations: %v", err)
	}
	if len(anims) != 2 {
		t.Fatalf("animations = %d, want 2", len(anims))
	}
	walk := anims[AnimWalk]
	if walk == nil || walk.Len() != 2 {
		t.Fatalf("walk = %v, want 2 frames", walk)
	}
	jump := anims[AnimJump]
	if jump == nil || jump.Len() != 1 {
		t.Fatalf("jump = %v, want 1 frame", jump)
	}
	jump.Update(251)
	if !jump.Ended() {
		t.Error("once animation should end after its last frame")
	}
	walk.Update(101)
	walk.Update(101)
	if walk.Ended() || walk.Index() != 0 {
		t.Errorf("loop animation index %d ended %v, want wrapped to 0", walk.Index(), walk.Ended())
	}
	if b := walk.Frame().Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("frame bounds = %v, want 16x16", b)
	}
}

func TestResourcesAnimationsErrors(t *testing.T) {
	r := NewResources(testFS(t))
	for _, path := range []string{
		"anims/missing.anim",
		"anims/short.anim",
		"anims/noimage.anim",
		"anims/badframe.anim",
	} {
		if _, err := r.Animations(path); err == nil {
			t.Errorf("Animations(%q) succeeded, want error", path)
		}
	}
}
