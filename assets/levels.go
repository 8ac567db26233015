package assets

import "embed"

// LevelFS holds the built-in level table and grids.
//
//go:embed levels
var LevelFS embed.FS

// LevelTable is the path of the built-in table inside LevelFS.
const LevelTable = "levels/levels.yaml"
