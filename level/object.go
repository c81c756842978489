package level

import (
	"fmt"

	"github.com/TheJoeSmo/Foundry/tileset"
)

// Object is a level-geometry record, a generator placing scenery or
// obstacles. Domains 0 to 6 group generators within an object set; domain
// 7 belongs to warps and never appears here.
//
// ExtraLength is present only for objects the shape table declares as four
// bytes long; which dimension it sizes is the shape's Axis.
type Object struct {
	Domain      uint8 // 0..6
	Y           uint8 // 0..31
	X           uint8
	ID          uint8
	ExtraLength *uint8
}

func decodeObject(b []byte, set uint8, table *tileset.Table) (Object, int, error) {
	if len(b) < 3 {
		return Object{}, 0, ErrTruncated
	}

	obj := Object{
		Domain: b[0] >> 5,
		Y:      b[0] & 0x1F,
		X:      b[1],
		ID:     b[2],
	}

	shape, err := table.Shape(set, obj.ID)
	if err != nil {
		return Object{}, 0, err
	}

	if shape.ByteLength == 4 {
		if len(b) < 4 {
			return Object{}, 0, ErrTruncated
		}
		l := b[3]
		obj.ExtraLength = &l
		return obj, 4, nil
	}

	return obj, 3, nil
}

func (o Object) encode(set uint8, table *tileset.Table) ([]byte, error) {
	if o.Domain >= WarpDomain {
		return nil, fmt.Errorf("level: object %#02x uses reserved domain %d", o.ID, o.Domain)
	}
	if o.Y > 0x1F {
		return nil, fmt.Errorf("level: object %#02x has y %d out of range", o.ID, o.Y)
	}

	shape, err := table.Shape(set, o.ID)
	if err != nil {
		return nil, err
	}

	b := []byte{o.Domain<<5 | o.Y, o.X, o.ID}

	if shape.ByteLength == 4 {
		if o.ExtraLength == nil {
			return nil, fmt.Errorf("level: object %#02x in set %d requires a length byte", o.ID, set)
		}
		return append(b, *o.ExtraLength), nil
	}

	if o.ExtraLength != nil {
		return nil, fmt.Errorf("level: object %#02x in set %d carries no length byte", o.ID, set)
	}
	return b, nil
}
