package loop

import (
	"github.com/tomz197/midline/internal/input"
	"github.com/tomz197/midline/internal/object"
)

// Action is what a key press amounted to.
type Action int

const (
	ActionNone Action = iota // ignored, or a shot still on cooldown
	ActionMove
	ActionFire
	ActionQuit
)

// HandleKey applies one key press to the session. Vertical moves wrap around
// the play rows; horizontal moves stop at the left edge and at the wall.
func HandleKey(st *State, k input.Key) Action {
	p := st.Player
	switch k {
	case input.KeyUp, 'w':
		p.Y--
		if p.Y < 0 {
			p.Y = st.Height - 2
		}
		return ActionMove

	case input.KeyDown, 's':
		p.Y++
		if p.Y >= st.Height-1 {
			p.Y = 0
		}
		return ActionMove

	case input.KeyLeft, 'a':
		p.X--
		if p.X < 0 {
			p.X = 0
		}
		return ActionMove

	case input.KeyRight, 'd':
		p.X++
		if limit := st.Midline() - object.PlayerGlyphWidth; p.X > limit {
			p.X = limit
		}
		return ActionMove

	case ' ':
		if st.Interval <= FireCooldown {
			return ActionNone
		}
		Shoot(st)
		st.Interval = 0
		return ActionFire

	case 'q', input.KeyInterrupt, input.KeyClosed:
		return ActionQuit
	}
	return ActionNone
}

// Shoot fires a fan of 2*level-1 bullets centred on the player's row from
// just right of the player glyph. Rows off the play area are skipped, so a
// shot near the top or bottom produces fewer bullets. It returns how many
// bullets were created.
func Shoot(st *State) int {
	p := st.Player
	x := p.X + object.PlayerGlyphWidth
	fired := 0
	for i := 1; i <= 2*p.Level-1; i++ {
		y := p.Y - p.Level + i
		if y < 0 || y > st.Height-2 {
			continue
		}
		st.AddBullet(object.NewBullet(x, y))
		fired++
	}
	return fired
}
