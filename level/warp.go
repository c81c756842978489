package level

import (
	"github.com/TheJoeSmo/Foundry/tileset"
)

// Warp is a domain-7 record describing where the player arrives after
// using a pipe or door.
//
// The stored x coordinate has its two nibbles swapped relative to reading
// order; X here is the logical value, the swap is confined to the codec.
// YIndex is not a coordinate but an index into a WarpYTable. Reserved
// holds bit 4 of the first byte and the low nibble of the second byte
// verbatim: nothing is known to use them, but no ROM variant is trusted to
// keep them zero, so a round trip reproduces them exactly.
type Warp struct {
	ExitAction uint8 // 0..15
	YIndex     uint8 // 0..15
	X          uint8
	Reserved   [2]uint8
}

// SwapNibbles reorders the two 4-bit halves of a byte. It is its own
// inverse.
func SwapNibbles(b uint8) uint8 {
	return b<<4 | b>>4
}

// DecodeWarp decodes a three-byte warp record. The caller is expected to
// have dispatched on the domain bits already; anything but domain 7 here
// is an InvalidDomainError.
func DecodeWarp(b []byte) (Warp, error) {
	if len(b) < 3 {
		return Warp{}, ErrTruncated
	}
	if b[0]>>5 != WarpDomain {
		return Warp{}, &InvalidDomainError{Domain: b[0] >> 5}
	}

	return Warp{
		ExitAction: b[0] & 0x0F,
		YIndex:     b[1] >> 4,
		X:          SwapNibbles(b[2]),
		Reserved:   [2]uint8{b[0] & 0x10, b[1] & 0x0F},
	}, nil
}

// EncodeWarp is the exact inverse of DecodeWarp, swapping the x nibbles
// back and reassembling the reserved bits untouched.
func EncodeWarp(w Warp) [3]byte {
	return [3]byte{
		WarpDomain<<5 | w.Reserved[0]&0x10 | w.ExitAction&0x0F,
		w.YIndex<<4 | w.Reserved[1]&0x0F,
		SwapNibbles(w.X),
	}
}

func (w Warp) encode(set uint8, table *tileset.Table) ([]byte, error) {
	b := EncodeWarp(w)
	return b[:], nil
}
