package object

// Player defaults.
const (
	PlayerHP       = 100
	MaxPlayerLevel = 5
)

// Player is the gun on the left half of the grid.
type Player struct {
	Point
	MaxHP int
	// HP may drop to zero or below; that ends the game.
	HP    int
	Score int
	// Level is the weapon spread tier, 1..MaxPlayerLevel.
	Level int
}

// NewPlayer creates a player at full health with a single-bullet weapon.
func NewPlayer(x, y int) *Player {
	return &Player{
		Point: Point{X: x, Y: y},
		MaxHP: PlayerHP,
		HP:    PlayerHP,
		Level: 1,
	}
}

// Dead reports whether the player has run out of hit points.
func (p *Player) Dead() bool {
	return p.HP <= 0
}

// LevelUp raises the weapon spread tier, stopping at MaxPlayerLevel.
// It reports whether the level changed.
func (p *Player) LevelUp() bool {
	if p.Level >= MaxPlayerLevel {
		return false
	}
	p.Level++
	return true
}

// Draw renders the player glyph with its left edge at the player position.
func (p *Player) Draw(s Surface) {
	s.Put(p.X, p.Y, PlayerGlyph)
}
