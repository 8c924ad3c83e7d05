package loop

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/midline/internal/object"
)

// Rand is the random source a Spawner draws from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Spawner drops enemies onto the right edge, more often as difficulty rises.
type Spawner struct {
	rng Rand
}

// NewSpawner creates a spawner drawing from rng. A nil rng gets a PCG source
// seeded from the clock.
func NewSpawner(rng Rand) *Spawner {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	}
	return &Spawner{rng: rng}
}

// SpawnOdds returns p for a 1-in-p chance of a spawn at difficulty level.
func SpawnOdds(level int) int {
	return max(SpawnFloor, SpawnBase-SpawnPerLevel*level)
}

// Spawn rolls once and, on success, adds an enemy at the right edge on a
// random play row. It reports whether an enemy was added.
func (s *Spawner) Spawn(st *State) bool {
	if s.rng.IntN(SpawnOdds(st.Level)) != 0 {
		return false
	}
	row := s.rng.IntN(st.Height - 1)
	st.AddEnemy(object.NewEnemy(st.Width-1, row))
	return true
}
