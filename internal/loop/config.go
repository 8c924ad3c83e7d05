package loop

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

import (
	"time"

	"github.com/tomz197/midline/internal/object"
)

// Grid
const (
	MinWidth  = 2 * object.PlayerGlyphWidth // the player glyph must fit left of the wall
	MinHeight = 3                           // one play row plus the two HUD rows
)

// Timing
const (
	TickWrap        = 100                   // Tick counts 0..TickWrap
	BulletSkipEvery = 10                    // bullets rest on ticks divisible by this
	FireCooldown    = 10                    // a shot needs more than this many ticks since the last
	FrameTime       = 10 * time.Millisecond // one tick
)

// Spawning and difficulty
const (
	SpawnBase         = 200 // 1-in-SpawnBase chance per tick at difficulty 0
	SpawnPerLevel     = 5   // each difficulty level shortens the odds by this much
	SpawnFloor        = 5   // odds never get better than 1-in-SpawnFloor
	EnemyStepBase     = 10  // enemies step every EnemyStepBase + EnemyStepScale/level ticks
	EnemyStepScale    = 40
	ScorePerLevel     = 10 // difficulty rises every ScorePerLevel kills
	InitialDifficulty = 1
)
