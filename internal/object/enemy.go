package object

// EnemyHP is the hit points every enemy spawns with.
const EnemyHP = 10

// Enemy walks from the right edge toward the midline wall.
// HP is carried for display purposes; a single hit destroys an enemy.
type Enemy struct {
	Point
	MaxHP int
	HP    int
}

// NewEnemy creates an enemy at full health.
func NewEnemy(x, y int) *Enemy {
	return &Enemy{
		Point: Point{X: x, Y: y},
		MaxHP: EnemyHP,
		HP:    EnemyHP,
	}
}

// Crossed reports whether the enemy has passed the wall at column midline.
func (e *Enemy) Crossed(midline int) bool {
	return e.X < midline
}

// Draw renders the enemy.
func (e *Enemy) Draw(s Surface) {
	s.Put(e.X, e.Y, EnemyGlyph)
}
