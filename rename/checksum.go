package rename

import (
	"hash/crc32"
	"io"

	"github.com/spf13/afero"
)

// Checksum calculates the CRC32 (IEEE) checksum of a file's contents.
func Checksum(fsys afero.Fs, path string) (uint32, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}

	return h.Sum32(), nil
}
