package loop

import (
	"errors"
	"fmt"

	"github.com/tomz197/midline/internal/object"
	"github.com/tomz197/midline/internal/physics"
)

// ErrTerminalTooSmall is returned when the grid cannot hold the playfield.
var ErrTerminalTooSmall = errors.New("terminal too small")

// Status is the shared bookkeeping of a session.
type Status struct {
	Height int // grid rows, fixed at startup
	Width  int // grid columns, fixed at startup

	EnemyCount  int // mirrors Enemies.Len()
	BulletCount int // mirrors Bullets.Len()

	Tick         int // 0..TickWrap
	Level        int // difficulty; unbounded, raised by score
	NoAttackTick int // ticks since the player was last hit
}

// Midline is the wall column. Enemies left of it have broken through.
func (s Status) Midline() int {
	return s.Width / 2
}

// State holds everything one game session mutates.
type State struct {
	Status
	Player  *object.Player
	Enemies *object.List[*object.Enemy]
	Bullets *object.List[*object.Bullet]

	// Interval counts ticks since the last shot.
	Interval int

	bulletCells *physics.CellGrid
}

// NewState creates a session for a width x height grid with the player
// parked against the wall on the middle row.
func NewState(width, height int) (*State, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrTerminalTooSmall, width, height, MinWidth, MinHeight)
	}

	return &State{
		Status: Status{
			Height: height,
			Width:  width,
			Level:  InitialDifficulty,
		},
		Player:  object.NewPlayer(width/2-object.PlayerGlyphWidth, height/2),
		Enemies: object.NewList[*object.Enemy](),
		Bullets: object.NewList[*object.Bullet](),

		bulletCells: physics.NewCellGrid(width, height),
	}, nil
}

// AddEnemy puts an enemy on the field and keeps EnemyCount in step.
func (s *State) AddEnemy(e *object.Enemy) {
	s.Enemies.PushFront(e)
	s.EnemyCount++
}

// AddBullet puts a bullet on the field and keeps BulletCount in step.
func (s *State) AddBullet(b *object.Bullet) {
	s.Bullets.PushFront(b)
	s.BulletCount++
}

// removeEnemy drops n and returns the node to resume iteration from.
func (s *State) removeEnemy(n *object.Node[*object.Enemy]) *object.Node[*object.Enemy] {
	s.EnemyCount--
	return s.Enemies.Remove(n)
}

// removeBullet drops n and returns the node to resume iteration from.
func (s *State) removeBullet(n *object.Node[*object.Bullet]) *object.Node[*object.Bullet] {
	s.BulletCount--
	return s.Bullets.Remove(n)
}

// Over reports whether the player has been worn down.
func (s *State) Over() bool {
	return s.Player.Dead()
}
