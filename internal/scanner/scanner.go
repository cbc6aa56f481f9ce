package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension returns the part of name after its last dot.
// ok is false when name contains no dot.
func Extension(name string) (ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i+1:], true
}

// HasExtension reports whether name's extension equals ext, case-sensitively
func HasExtension(name, ext string) bool {
	got, ok := Extension(filepath.Base(name))
	return ok && got == ext
}

// Scan lists the regular entries of dir (non-recursive) whose extension equals ext.
// Paths are joined with dir and returned in directory-read order.
// An empty result is not an error.
func Scan(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if HasExtension(e.Name(), ext) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	return files, nil
}
