package loop

import (
	"github.com/tomz197/midline/internal/object"
)

// indexBullets rebuilds the bullet occupancy grid from where the bullets sit
// now. Bullets do not move again until the next tick.
func indexBullets(st *State) {
	st.bulletCells.Clear()
	st.Bullets.Each(func(b *object.Bullet) {
		st.bulletCells.Insert(b.X, b.Y)
	})
}

// bulletAt reports whether any bullet sits exactly on p.
func bulletAt(st *State, p object.Point) bool {
	return st.bulletCells.Occupied(p.X, p.Y)
}
