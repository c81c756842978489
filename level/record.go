/*
Package level decodes and encodes the object, enemy and warp streams making
up a single level.

A level is stored as two independent byte streams. The geometry stream is a
run of variable-length records: three bytes for most objects, four where
the shape table says the object carries an extra length byte, and three for
warps, which share the stream layout under the reserved domain 7. The enemy
stream is a run of fixed three-byte records at a separate address, because
several levels can share one enemy list. Both streams end with a 0xFF
sentinel and have no self-checking whatsoever; a single misread length
desynchronises every record after it, which is why an unknown shape aborts
the decode instead of being guessed past.
*/
package level

import (
	"github.com/TheJoeSmo/Foundry/tileset"
)

// Terminator ends both the geometry and the enemy stream.
const Terminator = 0xFF

// WarpDomain is the domain value reserved for warp records.
const WarpDomain = 7

// Record is one entry of the geometry stream: either an Object or a Warp.
// The stream order of records is meaningful; later records draw on top of
// earlier ones.
type Record interface {
	encode(set uint8, table *tileset.Table) ([]byte, error)
}

// DecodeRecords decodes a geometry stream up to and including its
// terminator, returning the records in stream order and the number of
// bytes consumed. The domain bits of each leading byte are read once and
// dispatch between object and warp decoding.
func DecodeRecords(b []byte, set uint8, table *tileset.Table) ([]Record, int, error) {
	var records []Record

	i := 0
	for {
		if i >= len(b) {
			return nil, 0, ErrTruncated
		}
		if b[i] == Terminator {
			return records, i + 1, nil
		}

		if b[i]>>5 == WarpDomain {
			if i+3 > len(b) {
				return nil, 0, ErrTruncated
			}
			w, err := DecodeWarp(b[i : i+3])
			if err != nil {
				return nil, 0, err
			}
			records = append(records, w)
			i += 3
			continue
		}

		obj, n, err := decodeObject(b[i:], set, table)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, obj)
		i += n
	}
}

// EncodeRecords is the byte-for-byte inverse of DecodeRecords, appending
// the terminator. Records are written in the order given; callers that did
// not reorder them get back exactly the bytes they decoded.
func EncodeRecords(records []Record, set uint8, table *tileset.Table) ([]byte, error) {
	var out []byte

	for _, r := range records {
		b, err := r.encode(set, table)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	return append(out, Terminator), nil
}
