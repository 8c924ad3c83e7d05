package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/midline/internal/object"
)

const gameOverTitle = "GAME OVER"

// Canvas is a grid that can be erased and written to.
type Canvas interface {
	object.Surface
	Clear()
}

// Render draws one frame: player, bullets, enemies, the wall, then the HUD.
func Render(c Canvas, st *State) {
	c.Clear()

	st.Player.Draw(c)
	drawEach(c, st.Bullets)
	drawEach(c, st.Enemies)
	drawWall(c, st)
	drawPlayingHUD(c, st)
}

// drawEach draws every entity in l, newest first.
func drawEach[T object.Drawable](c Canvas, l *object.List[T]) {
	l.Each(func(d T) { d.Draw(c) })
}

// drawWall draws the midline on every play row.
func drawWall(c Canvas, st *State) {
	x := st.Midline()
	for y := 0; y < st.Height-1; y++ {
		c.Put(x, y, object.WallGlyph)
	}
}

// drawPlayingHUD draws health, weapon gauge and streak on the top row, and
// difficulty, score and enemy count on the bottom row.
func drawPlayingHUD(c Canvas, st *State) {
	top, bottom := hudLines(st)
	top.Draw(c)
	bottom.Draw(c)
}

func hudLines(st *State) (top, bottom object.Text) {
	top = object.Text{
		X:     0,
		Y:     0,
		Value: fmt.Sprintf("HP:%3d *:%-5s %4d", st.Player.HP, weaponGauge(st.Player.Level), st.NoAttackTick),
	}
	bottom = object.Text{
		X:     0,
		Y:     st.Height - 1,
		Value: fmt.Sprintf("LEVEL:%2d SCORE:%4d ENEMY:%d", st.Level, st.Player.Score, st.EnemyCount),
	}
	return top, bottom
}

// weaponGauge renders the spread tier as a bar of '='.
func weaponGauge(level int) string {
	return strings.Repeat("=", max(0, min(level, object.MaxPlayerLevel)))
}

// drawGameOver draws the final screen.
func drawGameOver(c Canvas, st *State) {
	c.Clear()
	object.Text{
		X:     (st.Width - len(gameOverTitle)) / 2,
		Y:     st.Height / 2,
		Value: gameOverTitle,
	}.Draw(c)
	object.Text{
		X:     st.Width / 2,
		Y:     st.Height/2 + 2,
		Value: fmt.Sprintf("SCORE %d", st.Player.Score),
	}.Draw(c)
}
