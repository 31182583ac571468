package blaster

import (
	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// GridSize is the side length of the square arena in cells.
const GridSize = 15

// StartCell is where the player spawns on every level.
var StartCell = core.Pt(1, 1)

// Tile is the static content of an arena cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileIndestructible
	TileDestructible
)

// String returns a short name for the tile.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileIndestructible:
		return "indestructible"
	case TileDestructible:
		return "destructible"
	default:
		return "unknown"
	}
}

// Grid is the arena tile map, indexed [y][x].
type Grid [GridSize][GridSize]Tile

// NewGrid builds a fresh arena: an indestructible border ring, an
// indestructible pillar at every interior cell with even x and even y, and
// destructible walls scattered over the rest outside the protected zone.
func NewGrid(cfg config.GridConfig, rng RNG) Grid {
	var g Grid
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if x == 0 || y == 0 || x == GridSize-1 || y == GridSize-1 {
				g[y][x] = TileIndestructible
			}
		}
	}

	for y := 2; y < GridSize-2; y += 2 {
		for x := 2; x < GridSize-2; x += 2 {
			g[y][x] = TileIndestructible
		}
	}

	for y := 1; y < GridSize-1; y++ {
		for x := 1; x < GridSize-1; x++ {
			if g[y][x] != TileEmpty || inSafeZone(core.Pt(x, y), cfg.SafeZone) {
				continue
			}
			if rng.Float64() < cfg.DestructibleChance {
				g[y][x] = TileDestructible
			}
		}
	}
	return g
}

// inSafeZone reports whether p lies in the protected starting corner.
func inSafeZone(p core.Point, size int) bool {
	return p.X <= size && p.Y <= size
}

// At returns the tile at p. Cells outside the arena read as indestructible.
func (g *Grid) At(p core.Point) Tile {
	if !p.In(GridSize) {
		return TileIndestructible
	}
	return g[p.Y][p.X]
}

// Set replaces the tile at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p core.Point, t Tile) {
	if !p.In(GridSize) {
		return
	}
	g[p.Y][p.X] = t
}

// Walkable reports whether p is inside the arena and empty.
func (g *Grid) Walkable(p core.Point) bool {
	return p.In(GridSize) && g[p.Y][p.X] == TileEmpty
}

// Count returns how many cells hold tile t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if g[y][x] == t {
				n++
			}
		}
	}
	return n
}
