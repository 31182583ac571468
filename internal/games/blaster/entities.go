package blaster

import (
	"time"

	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// Direction is one of the four axis directions. The declaration order is
// the order enemies enumerate moves and blasts propagate.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// allDirections lists directions in enumeration order.
var allDirections = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the unit cell offset for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "none"
}

// PowerUpKind identifies the effect of a collected power-up.
type PowerUpKind uint8

const (
	PowerUpBombCount PowerUpKind = iota // +1 max bombs
	PowerUpBombRange                    // +1 blast range
	PowerUpSpeed                        // Shorter movement gate
	PowerUpLife                         // +1 life
	PowerUpShield                       // Temporary immunity
	PowerUpMegaBomb                     // Placing a bomb on it adds mega range

	powerUpKindCount
)

// String returns the power-up name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBombCount:
		return "bomb count"
	case PowerUpBombRange:
		return "bomb range"
	case PowerUpSpeed:
		return "speed"
	case PowerUpLife:
		return "life"
	case PowerUpShield:
		return "shield"
	case PowerUpMegaBomb:
		return "mega bomb"
	}
	return "unknown"
}

// Owner records who placed a bomb: OwnerPlayer or an enemy id.
type Owner int

// OwnerPlayer marks bombs placed by the player. Enemy ids are never negative.
const OwnerPlayer Owner = -1

// IsPlayer reports whether the bomb belongs to the player.
func (o Owner) IsPlayer() bool {
	return o == OwnerPlayer
}

// Relocation is a deferred move of the player, applied once Ticks runs out.
type Relocation struct {
	Target core.Point
	Ticks  int
}

// Player is the single human-controlled entity.
type Player struct {
	Pos         core.Point
	Lives       int
	BombCount   int // Bombs currently on the field
	MaxBombs    int
	BombRange   int
	Speed       int
	HasShield   bool
	ShieldTimer int
	LastMove    time.Time   // Time of the last accepted step
	Pending     *Relocation // Set between a hit and the escape landing
}

// Escaping reports whether a post-hit relocation is still pending.
func (p *Player) Escaping() bool {
	return p.Pending != nil
}

// Enemy is an AI-controlled bomber.
type Enemy struct {
	ID        int
	Pos       core.Point
	Facing    Direction
	MoveTimer int
	BombTimer int
	BombCount int
	MaxBombs  int
	BombRange int
}

// Bomb is a placed charge counting down to detonation.
type Bomb struct {
	ID    int
	Pos   core.Point
	Timer int
	Range int
	Mega  bool
	Owner Owner
}

// Reach returns how far the blast travels in each direction.
func (b Bomb) Reach(megaBonus int) int {
	if b.Mega {
		return b.Range + megaBonus
	}
	return b.Range
}

// Explosion marks one burning cell of a detonation footprint.
type Explosion struct {
	ID    int
	Pos   core.Point
	Timer int
}

// PowerUp is an uncollected token dropped by a destroyed wall.
type PowerUp struct {
	ID    int
	Pos   core.Point
	Kind  PowerUpKind
	Timer int
}
