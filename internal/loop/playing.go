package loop

// Events summarizes what happened during one tick.
type Events struct {
	Spawned      bool
	Kills        int
	Breaches     int
	DifficultyUp bool
	WeaponUp     bool
}

// Step advances the session by one tick: bullets fly, a new enemy may
// appear, enemies break through, die or march, and a long enough streak
// without damage widens the player's weapon.
func Step(st *State, sp *Spawner) Events {
	var ev Events

	st.Tick++
	if st.Tick > TickWrap {
		st.Tick = 0
	}
	st.NoAttackTick++
	st.Interval++

	// Bullets rest one tick in every BulletSkipEvery; hits are only checked
	// on ticks where they moved.
	moved := st.Tick%BulletSkipEvery != 0
	if moved {
		advanceBullets(st)
		indexBullets(st)
	}

	ev.Spawned = sp.Spawn(st)
	resolveEnemies(st, moved, &ev)

	if st.NoAttackTick > NoAttackTicks {
		ev.WeaponUp = st.Player.LevelUp()
		st.NoAttackTick = 0
	}
	return ev
}

// advanceBullets moves every bullet right and drops those past the edge.
func advanceBullets(st *State) {
	for n := st.Bullets.Front(); n != nil; {
		if n.Value.Advance(st.Width) {
			n = st.removeBullet(n)
			continue
		}
		n = n.Next()
	}
}

// resolveEnemies settles each enemy for this tick. A breach is checked before
// a bullet hit, so an enemy past the wall always costs the player a point of
// health even when a bullet shares its cell.
func resolveEnemies(st *State, bulletsMoved bool, ev *Events) {
	midline := st.Midline()
	for n := st.Enemies.Front(); n != nil; {
		e := n.Value
		switch {
		case e.Crossed(midline):
			n = st.removeEnemy(n)
			st.Player.HP--
			st.NoAttackTick = 0
			ev.Breaches++

		case bulletsMoved && bulletAt(st, e.Point):
			// The bullet is left in place and can score again.
			n = st.removeEnemy(n)
			st.Player.Score++
			ev.Kills++
			if st.Player.Score%ScorePerLevel == 0 {
				st.Level++
				ev.DifficultyUp = true
			}

		default:
			if st.Tick%enemyStepPeriod(st.Level) == 0 {
				e.X--
			}
			n = n.Next()
		}
	}
}

// enemyStepPeriod is the number of ticks between enemy steps at a difficulty.
func enemyStepPeriod(level int) int {
	return EnemyStepBase + EnemyStepScale/level
}
