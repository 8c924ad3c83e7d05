package object

// Bullet is a projectile fired by the player. It travels one cell to the right
// on every advancing tick.
type Bullet struct {
	Point
}

// NewBullet creates a bullet at column x, row y.
func NewBullet(x, y int) *Bullet {
	return &Bullet{Point: Point{X: x, Y: y}}
}

// Advance moves the bullet one cell right and reports whether it left a grid
// of the given width.
func (b *Bullet) Advance(width int) (gone bool) {
	b.X++
	return b.X > width-1
}

// Draw renders the bullet.
func (b *Bullet) Draw(s Surface) {
	s.Put(b.X, b.Y, BulletGlyph)
}
