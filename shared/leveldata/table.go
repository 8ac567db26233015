package leveldata

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// DefaultVerticalTiles is used when a table entry leaves verticalTiles unset.
const DefaultVerticalTiles = 11

// Entry is one level in the table file. A level's grids come either from
// Dir, holding one <layer>.csv per layer, or from a single TMX map.
type Entry struct {
	ID            int        `yaml:"id"`
	Name          string     `yaml:"name"`
	Dir           string     `yaml:"dir,omitempty"`
	TMX           string     `yaml:"tmx,omitempty"`
	Node          [2]float64 `yaml:"node"`
	Unlock        int        `yaml:"unlock"`
	VerticalTiles int        `yaml:"verticalTiles,omitempty"`
}

// Table is the ordered list of levels shown on the level select map.
type Table struct {
	Levels []Entry `yaml:"levels"`
}

// ParseTable decodes a level table. Level ids must run 0..n-1 in order.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse level table: %w", err)
	}
	if len(t.Levels) == 0 {
		return nil, fmt.Errorf("level table has no levels")
	}
	for i, e := range t.Levels {
		if e.ID != i {
			return nil, fmt.Errorf("level table entry %d has id %d", i, e.ID)
		}
		if e.Dir == "" && e.TMX == "" {
			return nil, fmt.Errorf("level %d: needs dir or tmx", e.ID)
		}
		if e.Unlock < 0 {
			return nil, fmt.Errorf("level %d: negative unlock %d", e.ID, e.Unlock)
		}
	}
	return &t, nil
}

// Entry returns the table entry for id.
func (t *Table) Entry(id int) (Entry, error) {
	if id < 0 || id >= len(t.Levels) {
		return Entry{}, fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
	}
	return t.Levels[id], nil
}

// Loader reads the table and level grids from a file system, so callers can
// pass the embedded data or os.DirFS for files being edited.
type Loader struct {
	fsys  fs.FS
	root  string
	table *Table
}

// NewLoader reads and parses the table at tablePath inside fsys. Level
// paths in the table are relative to the table's directory.
func NewLoader(fsys fs.FS, tablePath string) (*Loader, error) {
	data, err := fs.ReadFile(fsys, tablePath)
	if err != nil {
		return nil, fmt.Errorf("read level table %s: %w", tablePath, err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, err
	}
	return &Loader{fsys: fsys, root: path.Dir(tablePath), table: t}, nil
}

func (l *Loader) Table() *Table {
	return l.table
}

// Load reads and validates the descriptor for level id.
func (l *Loader) Load(id int) (*Descriptor, error) {
	e, err := l.table.Entry(id)
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		ID:            e.ID,
		Name:          e.Name,
		Unlock:        e.Unlock,
		NodeX:         e.Node[0],
		NodeY:         e.Node[1],
		VerticalTiles: e.VerticalTiles,
	}
	if d.VerticalTiles == 0 {
		d.VerticalTiles = DefaultVerticalTiles
	}

	if e.TMX != "" {
		d.Layers, err = LoadTMX(l.fsys, path.Join(l.root, e.TMX))
	} else {
		d.Layers, err = l.loadDir(path.Join(l.root, e.Dir))
	}
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// loadDir reads <layer>.csv for every known layer. Missing files mean the
// level does not use that layer. Unrecognised csv files are an error.
func (l *Loader) loadDir(dir string) (map[Layer]Grid, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read level dir %s: %w", dir, err)
	}

	layers := make(map[Layer]Grid)
	for _, ent := range entries {
		if ent.IsDir() || path.Ext(ent.Name()) != ".csv" {
			continue
		}
		name := ent.Name()[:len(ent.Name())-len(".csv")]
		if !KnownLayer(name) {
			return nil, fmt.Errorf("%s/%s: %w", dir, ent.Name(), ErrUnknownLayer)
		}

		f, err := l.fsys.Open(path.Join(dir, ent.Name()))
		if err != nil {
			return nil, err
		}
		g, err := ReadGrid(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", dir, ent.Name(), err)
		}
		layers[Layer(name)] = g
	}
	return layers, nil
}

// Check loads every level in the table and returns the first error.
func (l *Loader) Check() error {
	for _, e := range l.table.Levels {
		if _, err := l.Load(e.ID); err != nil {
			return err
		}
	}
	return nil
}
