/*
Package tileset describes the twelve object sets of the game and the shape
rules attached to them.

Every level-geometry record is three or four bytes long. Whether the fourth
byte exists, and which dimension it sizes, is a property of the
(tileset, object id) pair and of nothing else; the same id can be a
three-byte object in one tileset and a four-byte one in another. The Table
type holds that mapping exhaustively so a decoder never has to guess a
record length from id ranges.
*/
package tileset

// Count is the number of object sets a level can select.
const Count = 12

// Object set numbers as used by the game.
const (
	WorldMap = iota
	Plains
	Dungeon
	Hilly
	Sky
	PiranhaPlant
	Water
	Mushroom
	Pipe
	Desert
	Airship
	Giant
)

// Names maps an object set number to its display name.
var Names = [Count]string{
	"World Map",
	"Plains",
	"Dungeon",
	"Hilly",
	"Sky",
	"Piranha Plant",
	"Water",
	"Mushroom",
	"Pipe",
	"Desert",
	"Airship",
	"Giant",
}

// Axis says which dimension the fourth byte of a four-byte object sizes.
type Axis int

const (
	AxisNone Axis = iota
	AxisHeight
	AxisWidth
)

func (a Axis) String() string {
	switch a {
	case AxisHeight:
		return "height"
	case AxisWidth:
		return "width"
	default:
		return "none"
	}
}

// Shape is the byte length and dimension rule of one object id within one
// object set.
type Shape struct {
	ByteLength int
	Axis       Axis
}
