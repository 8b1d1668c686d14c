package squall

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/joho/godotenv"
)

// Resources loads images, fonts and animations from a file system and caches
// them by path. It is used at scene setup; the simulation only ever sees the
// resolved handles.
type Resources struct {
	fsys    fs.FS
	images  map[string]*ebiten.Image
	sources map[string]*text.GoTextFaceSource
}

// NewResources creates a loader reading from fsys.
func NewResources(fsys fs.FS) *Resources {
	return &Resources{
		fsys:    fsys,
		images:  make(map[string]*ebiten.Image),
		sources: make(map[string]*text.GoTextFaceSource),
	}
}

// Image returns the decoded image at path.
func (r *Resources) Image(path string) (*ebiten.Image, error) {
	if img, ok := r.images[path]; ok {
		return img, nil
	}
	f, err := r.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("squall: open image: %w", err)
	}
	defer f.Close()
	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("squall: decode image %s: %w", path, err)
	}
	r.images[path] = img
	return img, nil
}

// Face returns a face of the given size for the TrueType font at path. The
// parsed font is cached; faces are cheap.
func (r *Resources) Face(path string, size float64) (text.Face, error) {
	src, ok := r.sources[path]
	if !ok {
		data, err := fs.ReadFile(r.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("squall: read font: %w", err)
		}
		src, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("squall: failed to parse TTF data %s: %w", path, err)
		}
		r.sources[path] = src
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// LoadFace parses TrueType data and returns a face of the given size.
func LoadFace(ttf []byte, size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("squall: failed to parse TTF data: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// Animations reads an animation definition file of name=value lines, each
// value being "image;loop|once;{x,y,w,h,ms+...}", and returns the animations
// by name. Image paths are resolved through r.
func (r *Resources) Animations(path string) (map[string]*Animation, error) {
	f, err := r.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("squall: open animations: %w", err)
	}
	defer f.Close()
	defs, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("squall: parse animations %s: %w", path, err)
	}
	anims := make(map[string]*Animation, len(defs))
	for name, def := range defs {
		args := strings.SplitN(def, ";", 3)
		if len(args) != 3 {
			return nil, fmt.Errorf("squall: animation %s: want image;loop;{frames}, got %q", name, def)
		}
		sheet, err := r.Image(args[0])
		if err != nil {
			return nil, fmt.Errorf("squall: animation %s: %w", name, err)
		}
		frames, err := ParseFrames(sheet, args[2])
		if err != nil {
			return nil, fmt.Errorf("squall: animation %s: %w", name, err)
		}
		anims[name] = NewAnimation(frames...).SetLoop(args[1] == "loop")
	}
	return anims, nil
}
