package loop

import (
	"strings"
	"testing"

	"github.com/tomz197/midline/internal/input"
)

// scriptedRand returns queued values, then fallback forever.
type scriptedRand struct {
	values   []int
	fallback int
	asked    []int
}

func (r *scriptedRand) IntN(n int) int {
	r.asked = append(r.asked, n)
	if len(r.values) == 0 {
		return r.fallback % n
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// neverSpawn keeps the field free of surprise enemies.
func neverSpawn() *Spawner {
	return NewSpawner(&scriptedRand{fallback: 1})
}

// fakeTerminal records a frame in a character grid and replays scripted keys.
type fakeTerminal struct {
	width, height int
	grid          [][]byte

	keys    []input.Key
	waitKey input.Key

	clears, flushes, flashes, waits int
	flushErr                        error
}

func newFakeTerminal(width, height int, keys ...input.Key) *fakeTerminal {
	f := &fakeTerminal{width: width, height: height, keys: keys, waitKey: ' '}
	f.Clear()
	f.clears = 0
	return f
}

func (f *fakeTerminal) Size() (int, int) { return f.width, f.height }

func (f *fakeTerminal) Clear() {
	f.clears++
	f.grid = make([][]byte, f.height)
	for y := range f.grid {
		f.grid[y] = []byte(strings.Repeat(" ", f.width))
	}
}

func (f *fakeTerminal) Put(col, row int, s string) {
	if row < 0 || row >= f.height {
		return
	}
	for i := 0; i < len(s); i++ {
		if x := col + i; x >= 0 && x < f.width {
			f.grid[row][x] = s[i]
		}
	}
}

func (f *fakeTerminal) Flush() error {
	f.flushes++
	return f.flushErr
}

func (f *fakeTerminal) Flash() error {
	f.flashes++
	return nil
}

func (f *fakeTerminal) PollKey() input.Key {
	if len(f.keys) == 0 {
		return input.KeyNone
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k
}

func (f *fakeTerminal) WaitKey() input.Key {
	f.waits++
	return f.waitKey
}

func (f *fakeTerminal) row(y int) string {
	return string(f.grid[y])
}

func (f *fakeTerminal) at(x, y int) byte {
	return f.grid[y][x]
}

// newTestState builds a session or fails the test.
func newTestState(t *testing.T, width, height int) *State {
	t.Helper()
	st, err := NewState(width, height)
	if err != nil {
		t.Fatalf("NewState(%d, %d): %v", width, height, err)
	}
	return st
}

// checkCounts asserts the count mirrors match the lists.
func checkCounts(t *testing.T, st *State) {
	t.Helper()
	if st.EnemyCount != st.Enemies.Len() {
		t.Fatalf("EnemyCount = %d, list holds %d", st.EnemyCount, st.Enemies.Len())
	}
	if st.BulletCount != st.Bullets.Len() {
		t.Fatalf("BulletCount = %d, list holds %d", st.BulletCount, st.Bullets.Len())
	}
}
