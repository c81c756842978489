package foundry

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/TheJoeSmo/Foundry/rom"
)

// crcROM returns the checksum emulator databases key a cartridge on: the
// CRC-32 of the data behind the iNES header, as an upper-case hex string.
func crcROM(r *rom.ROM) string {
	return fmt.Sprintf("%.*X", crc32.Size<<1, r.Checksum())
}

// crcFile computes the same checksum straight from disk, without holding
// the image in memory.
func crcFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err = f.Seek(rom.BaseOffset, io.SeekStart); err != nil {
		return "", err
	}

	h := crc32.NewIEEE()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil)), nil
}
