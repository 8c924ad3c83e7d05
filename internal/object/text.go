package object

// Text is a line of HUD text anchored at a cell.
type Text struct {
	X     int
	Y     int
	Value string
}

// Draw writes the text, clipping negative coordinates to the grid origin.
func (t Text) Draw(s Surface) {
	if t.Value == "" {
		return
	}
	x := t.X
	y := t.Y
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	s.Put(x, y, t.Value)
}
