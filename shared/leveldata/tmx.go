package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadTMX reads a Tiled map whose tile layers are named after level layers.
// A cell's code is its tile id local to the tileset, so the first tile of
// the tileset is code 0. Empty cells become Empty.
func LoadTMX(fsys fs.FS, tmxPath string) (map[Layer]Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layers := make(map[Layer]Grid, len(levelMap.Layers))
	for _, layer := range levelMap.Layers {
		if !KnownLayer(layer.Name) {
			return nil, fmt.Errorf("%s: layer %q: %w", tmxPath, layer.Name, ErrUnknownLayer)
		}

		grid := make(Grid, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			row := make([]int, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					row[x] = Empty
					continue
				}
				row[x] = int(tile.ID)
			}
			grid[y] = row
		}
		layers[Layer(layer.Name)] = grid
	}
	return layers, nil
}
