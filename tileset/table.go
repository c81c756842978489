package tileset

import (
	"errors"
	"fmt"
)

var (
	errBadLength = errors.New("tileset: object byte length must be 3 or 4")
	errBadAxis   = errors.New("tileset: three-byte objects carry no length axis")
)

// UnknownShapeError reports a (tileset, id) pair the shape table has no
// entry for. It marks a configuration gap, never a condition to recover
// from by defaulting.
type UnknownShapeError struct {
	Tileset uint8
	ID      uint8
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("tileset: no shape for object %#02x in set %d", e.ID, e.Tileset)
}

// Span assigns one shape to a contiguous run of object ids, inclusive of
// both ends. Spans are how a definition is authored; the table they build
// is still checked for full id coverage.
type Span struct {
	First uint8
	Last  uint8
	Shape Shape
}

// Definition is the authored shape configuration of a single object set.
type Definition struct {
	Name  string
	Spans []Span
}

// Table is the immutable shape lookup for all object sets. Construct it
// once at startup; concurrent reads need no synchronisation.
type Table struct {
	shapes [Count][256]Shape
}

// NewTable builds a Table from one definition per object set. Every id of
// every set must be covered by exactly one span; a gap or an overlap is a
// construction-time error.
func NewTable(defs [Count]Definition) (*Table, error) {
	t := new(Table)

	for set, def := range defs {
		var covered [256]bool

		for _, s := range def.Spans {
			if s.Shape.ByteLength != 3 && s.Shape.ByteLength != 4 {
				return nil, fmt.Errorf("set %d, objects %#02x-%#02x: %w", set, s.First, s.Last, errBadLength)
			}
			if s.Shape.ByteLength == 3 && s.Shape.Axis != AxisNone {
				return nil, fmt.Errorf("set %d, objects %#02x-%#02x: %w", set, s.First, s.Last, errBadAxis)
			}
			if s.Last < s.First {
				return nil, fmt.Errorf("tileset: set %d has inverted span %#02x-%#02x", set, s.First, s.Last)
			}
			for id := int(s.First); id <= int(s.Last); id++ {
				if covered[id] {
					return nil, fmt.Errorf("tileset: set %d maps object %#02x twice", set, id)
				}
				covered[id] = true
				t.shapes[set][id] = s.Shape
			}
		}

		for id := 0; id < 256; id++ {
			if !covered[id] {
				return nil, &UnknownShapeError{Tileset: uint8(set), ID: uint8(id)}
			}
		}
	}

	return t, nil
}

// Shape returns the shape of an object id within an object set. The table
// is complete by construction, so the only possible failure is an object
// set number outside the range the game defines.
func (t *Table) Shape(set, id uint8) (Shape, error) {
	if int(set) >= Count {
		return Shape{}, &UnknownShapeError{Tileset: set, ID: id}
	}
	return t.shapes[set][id], nil
}

func mustTable(defs [Count]Definition) *Table {
	t, err := NewTable(defs)
	if err != nil {
		panic(err)
	}
	return t
}
