package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/treasure-hunters/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sheet is an ordered frame sequence. Width and Height are the frame size
// and are set even when Frames holds nil images, so geometry does not
// depend on graphics being loaded.
type Sheet struct {
	Frames []*ebiten.Image
	Width  int
	Height int
}

// Len is the number of frames.
func (s *Sheet) Len() int {
	return len(s.Frames)
}

// Frame returns frame i, or nil when it is out of range or not loaded.
func (s *Sheet) Frame(i int) *ebiten.Image {
	if s == nil || i < 0 || i >= len(s.Frames) {
		return nil
	}
	return s.Frames[i]
}

// Library loads and caches sprite sheets. Files that are missing from the
// asset root are replaced by solid placeholder frames of the configured
// size, so the game runs without the art pack.
type Library struct {
	fsys     fs.FS
	headless bool
	sheets   map[config.SpriteID]*Sheet
	nodes    map[int]*Sheet
	missing  []string
}

// NewLibrary reads images from fsys. A nil fsys uses placeholders only.
func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:   fsys,
		sheets: make(map[config.SpriteID]*Sheet),
		nodes:  make(map[int]*Sheet),
	}
}

// NewHeadless returns a library whose sheets carry sizes and frame counts
// but no images. Simulation code runs on it without a graphics device.
func NewHeadless() *Library {
	l := NewLibrary(nil)
	l.headless = true
	return l
}

// Missing lists the paths that fell back to placeholders.
func (l *Library) Missing() []string {
	return l.missing
}

// Sheet returns the sheet for id, loading it on first use.
func (l *Library) Sheet(id config.SpriteID) *Sheet {
	if s, ok := l.sheets[id]; ok {
		return s
	}
	def, ok := config.Sprites[id]
	if !ok {
		panic(fmt.Sprintf("assets: unknown sprite %q", id))
	}
	s := l.load(def)
	l.sheets[id] = s
	return s
}

// Node returns the overworld node animation for a level.
func (l *Library) Node(level int) *Sheet {
	if s, ok := l.nodes[level]; ok {
		return s
	}
	s := l.load(config.NodeSprite(level))
	l.nodes[level] = s
	return s
}

// Preload loads every configured sheet.
func (l *Library) Preload() {
	for id := range config.Sprites {
		l.Sheet(id)
	}
}

func (l *Library) load(def config.SpriteDef) *Sheet {
	if l.headless {
		return &Sheet{Frames: make([]*ebiten.Image, def.Frames), Width: def.Width, Height: def.Height}
	}
	if l.fsys != nil {
		var (
			s   *Sheet
			err error
		)
		switch {
		case def.Cut:
			s, err = l.loadCut(def.Path, config.C.TileSize)
		case def.Single:
			s, err = l.loadSingle(def.Path)
		default:
			s, err = l.loadFolder(def.Path)
		}
		if err == nil && s.Len() > 0 {
			return s
		}
	}
	l.missing = append(l.missing, def.Path)
	return placeholder(def)
}

func (l *Library) loadImage(p string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return img, nil
}

func (l *Library) loadSingle(p string) (*Sheet, error) {
	img, err := l.loadImage(p)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Sheet{Frames: []*ebiten.Image{img}, Width: b.Dx(), Height: b.Dy()}, nil
}

// loadFolder reads every png in dir ordered by the number in its name.
func (l *Library) loadFolder(dir string) (*Sheet, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return frameNumber(names[i]) < frameNumber(names[j])
	})

	s := &Sheet{}
	for _, name := range names {
		img, err := l.loadImage(path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		s.Frames = append(s.Frames, img)
	}
	if len(s.Frames) > 0 {
		b := s.Frames[0].Bounds()
		s.Width, s.Height = b.Dx(), b.Dy()
	}
	return s, nil
}

// loadCut slices one image into size x size tiles, row by row.
func (l *Library) loadCut(p string, size int) (*Sheet, error) {
	img, err := l.loadImage(p)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	s := &Sheet{Width: size, Height: size}
	for y := 0; y+size <= b.Dy(); y += size {
		for x := 0; x+size <= b.Dx(); x += size {
			r := image.Rect(x, y, x+size, y+size).Add(b.Min)
			s.Frames = append(s.Frames, img.SubImage(r).(*ebiten.Image))
		}
	}
	return s, nil
}

func frameNumber(name string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(name, path.Ext(name)))
	if err != nil {
		return 1 << 30
	}
	return n
}

func placeholder(def config.SpriteDef) *Sheet {
	s := &Sheet{Width: def.Width, Height: def.Height}
	for i := 0; i < def.Frames; i++ {
		img := ebiten.NewImage(def.Width, def.Height)
		c := def.Color
		// alternate frames slightly so animation is visible
		if i%2 == 1 && c.A > 0 {
			c.R, c.G, c.B = c.R/8*7, c.G/8*7, c.B/8*7
		}
		img.Fill(c)
		s.Frames = append(s.Frames, img)
	}
	return s
}
