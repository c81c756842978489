package level

// Enemy is one record of the enemy/item stream: always three bytes, no
// tileset dependency. Y occupies the low five bits of the last byte;
// Reserved keeps the remaining three bits verbatim for byte-stable round
// trips. Stream order carries no drawing meaning but is preserved anyway.
type Enemy struct {
	ID       uint8
	X        uint8
	Y        uint8 // 0..31
	Reserved uint8
}

// DecodeEnemies decodes an enemy stream up to and including its
// terminator, returning the consumed length.
func DecodeEnemies(b []byte) ([]Enemy, int, error) {
	var enemies []Enemy

	i := 0
	for {
		if i >= len(b) {
			return nil, 0, ErrTruncated
		}
		if b[i] == Terminator {
			return enemies, i + 1, nil
		}
		if i+3 > len(b) {
			return nil, 0, ErrTruncated
		}

		enemies = append(enemies, Enemy{
			ID:       b[i],
			X:        b[i+1],
			Y:        b[i+2] & 0x1F,
			Reserved: b[i+2] &^ 0x1F,
		})
		i += 3
	}
}

// EncodeEnemies is the inverse of DecodeEnemies, appending the terminator.
func EncodeEnemies(enemies []Enemy) []byte {
	out := make([]byte, 0, len(enemies)*3+1)
	for _, e := range enemies {
		out = append(out, e.ID, e.X, e.Y&0x1F|e.Reserved&^0x1F)
	}
	return append(out, Terminator)
}
