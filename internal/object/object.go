// Package object defines the entities of the playfield and the list that owns them.
package object

// Glyphs drawn for each entity.
const (
	PlayerGlyph = "['_']-+="
	EnemyGlyph  = "#"
	BulletGlyph = "*"
	WallGlyph   = "|"
)

// PlayerGlyphWidth is the number of cells the player glyph occupies.
const PlayerGlyphWidth = len(PlayerGlyph)

// Point is a cell on the character grid. Column is X, row is Y, both 0-based.
type Point struct {
	X, Y int
}

// Surface is anything entities can be drawn onto.
type Surface interface {
	Put(col, row int, s string)
}

// Drawable is an entity that knows how to draw itself.
type Drawable interface {
	Draw(s Surface)
}
