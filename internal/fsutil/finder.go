// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFilesByExtensions resolves a configuration path into the concrete
// files to load. A file path is returned as-is (after checking its
// extension); a directory is walked recursively for files matching any
// of the given extensions. Extensions include the dot, e.g. ".hcl".
func FindFilesByExtensions(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access config path %s: %w", rootPath, err)
	}

	if !info.IsDir() {
		if !matchesAny(rootPath, extensions) {
			return nil, fmt.Errorf("config file %s has an unsupported extension (want one of %v)", rootPath, extensions)
		}
		return []string{rootPath}, nil
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && matchesAny(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func matchesAny(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
