package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnemiesEmptyStream(t *testing.T) {
	enemies, consumed, err := DecodeEnemies([]byte{Terminator, 0xAA})
	require.NoError(t, err)
	assert.Empty(t, enemies)
	assert.Equal(t, 1, consumed)
}

func TestDecodeEnemies(t *testing.T) {
	b := []byte{
		0x72, 0x30, 0x04,
		0x6C, 0x81, 0xE5, // upper three bits of the last byte are reserved
		Terminator,
	}

	enemies, consumed, err := DecodeEnemies(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), consumed)
	assert.Equal(t, []Enemy{
		{ID: 0x72, X: 0x30, Y: 0x04},
		{ID: 0x6C, X: 0x81, Y: 0x05, Reserved: 0xE0},
	}, enemies)

	assert.Equal(t, b, EncodeEnemies(enemies))
}

func TestDecodeEnemiesTruncated(t *testing.T) {
	for _, b := range [][]byte{
		nil,
		{0x72},
		{0x72, 0x30},
		{0x72, 0x30, 0x04}, // no terminator
	} {
		_, _, err := DecodeEnemies(b)
		assert.Equal(t, ErrTruncated, err)
	}
}

func TestEncodeEnemiesEmpty(t *testing.T) {
	assert.Equal(t, []byte{Terminator}, EncodeEnemies(nil))
}
