package foundry

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheJoeSmo/Foundry/rom"
)

func TestCRC(t *testing.T) {
	data := make([]byte, 0x30)
	for i := range data {
		data[i] = uint8(i)
	}

	crc := crcROM(rom.New(data))
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), crc)

	// the iNES header is excluded, so header edits leave the crc alone
	edited := make([]byte, len(data))
	copy(edited, data)
	edited[4] = 0xEE
	assert.Equal(t, crc, crcROM(rom.New(edited)))

	dir, err := ioutil.TempDir("", "foundry")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "image.nes")
	require.NoError(t, ioutil.WriteFile(path, data, 0644))

	fromFile, err := crcFile(path)
	require.NoError(t, err)
	assert.Equal(t, crc, fromFile)
}
