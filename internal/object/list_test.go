package object

import (
	"slices"
	"testing"
)

func collect(l *List[int]) []int {
	var out []int
	l.Each(func(v int) { out = append(out, v) })
	return out
}

func TestListPushFrontOrder(t *testing.T) {
	l := NewList[int]()
	for i := 1; i <= 4; i++ {
		l.PushFront(i)
	}

	if got := collect(l); !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("order = %v, want [4 3 2 1]", got)
	}
	if l.Len() != 4 {
		t.Errorf("Len() = %d, want 4", l.Len())
	}
}

func TestListRemoveDuringWalk(t *testing.T) {
	tests := []struct {
		name   string
		drop   func(int) bool
		remain []int
	}{
		{"none", func(int) bool { return false }, []int{5, 4, 3, 2, 1}},
		{"all", func(int) bool { return true }, nil},
		{"front", func(v int) bool { return v == 5 }, []int{4, 3, 2, 1}},
		{"back", func(v int) bool { return v == 1 }, []int{5, 4, 3, 2}},
		{"odd", func(v int) bool { return v%2 == 1 }, []int{4, 2}},
		{"adjacent middle", func(v int) bool { return v == 3 || v == 2 }, []int{5, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList[int]()
			for i := 1; i <= 5; i++ {
				l.PushFront(i)
			}

			var visited []int
			for n := l.Front(); n != nil; {
				visited = append(visited, n.Value)
				if tt.drop(n.Value) {
					n = l.Remove(n)
					continue
				}
				n = n.Next()
			}

			if !slices.Equal(visited, []int{5, 4, 3, 2, 1}) {
				t.Errorf("visited = %v, want every node once", visited)
			}
			if got := collect(l); !slices.Equal(got, tt.remain) {
				t.Errorf("remaining = %v, want %v", got, tt.remain)
			}
			if l.Len() != len(tt.remain) {
				t.Errorf("Len() = %d, want %d", l.Len(), len(tt.remain))
			}
		})
	}
}

func TestListRemoveTwiceCountsOnce(t *testing.T) {
	l := NewList[int]()
	n := l.PushFront(1)
	l.PushFront(2)

	l.Remove(n)
	l.Remove(n)

	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if got := collect(l); !slices.Equal(got, []int{2}) {
		t.Errorf("remaining = %v, want [2]", got)
	}
}

func TestListRemoveForeignNode(t *testing.T) {
	a := NewList[int]()
	b := NewList[int]()
	a.PushFront(1)
	n := b.PushFront(2)

	a.Remove(n)

	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("lengths = %d, %d, want 1, 1", a.Len(), b.Len())
	}
}

func TestListPushAfterEmptying(t *testing.T) {
	l := NewList[int]()
	l.Remove(l.PushFront(1))
	l.PushFront(2)

	if l.Front() == nil || l.Front().Value != 2 {
		t.Fatalf("front not reset after emptying")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}
