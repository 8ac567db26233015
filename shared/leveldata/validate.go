package leveldata

import "fmt"

// Validate checks the preconditions for building a level: a terrain grid,
// every other layer matching its dimensions, exactly one player start and
// at most one boss.
func (d *Descriptor) Validate() error {
	terrain := d.Grid(LayerTerrain)
	if terrain.Rows() == 0 || terrain.Cols() == 0 {
		return fmt.Errorf("level %d: empty terrain: %w", d.ID, ErrDimensions)
	}

	for name, g := range d.Layers {
		if !KnownLayer(string(name)) {
			return fmt.Errorf("level %d: %q: %w", d.ID, name, ErrUnknownLayer)
		}
		if g.Rows() != terrain.Rows() {
			return fmt.Errorf("level %d: %s has %d rows, terrain %d: %w",
				d.ID, name, g.Rows(), terrain.Rows(), ErrDimensions)
		}
		for r, row := range g {
			if len(row) != terrain.Cols() {
				return fmt.Errorf("level %d: %s row %d has %d cols, terrain %d: %w",
					d.ID, name, r, len(row), terrain.Cols(), ErrDimensions)
			}
		}
	}

	if n := d.Grid(LayerPlayer).Count(PlayerStart); n != 1 {
		return fmt.Errorf("level %d: %d player starts: %w", d.ID, n, ErrNoPlayer)
	}

	bosses := 0
	d.Grid(LayerBoss).Each(func(_, _, _ int) { bosses++ })
	if bosses > 1 {
		return fmt.Errorf("level %d: %d boss markers: %w", d.ID, bosses, ErrTooManyBoss)
	}
	return nil
}
