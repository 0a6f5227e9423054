package rename

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Enumerate walks dir recursively and returns every regular file whose
// extension matches ext case-insensitively, sorted in natural order by full
// path. A leading dot on ext is ignored, so "mp3" and ".mp3" are equivalent.
// Symlinks are not followed (the walk is lstat-based). An empty result is not
// an error; the caller decides what an empty set means.
func Enumerate(fsys afero.Fs, dir, ext string) ([]string, error) {
	want := strings.ToLower(strings.TrimPrefix(ext, "."))

	var files []string
	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		got := filepath.Ext(path)
		if got == "" {
			return nil
		}
		if strings.ToLower(strings.TrimPrefix(got, ".")) != want {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, &EnumerationError{Dir: dir, Err: err}
	}

	SortNatural(files)
	return files, nil
}
