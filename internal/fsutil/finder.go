// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FindCMakeFiles returns the CMake build descriptions reachable from
// rootPath. A file path is returned as-is; a directory is walked recursively
// for CMakeLists.txt files and *.cmake scripts, in walk order.
func FindCMakeFiles(rootPath string) ([]string, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("accessing path %s: %w", rootPath, err)
	}

	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == "CMakeLists.txt" || filepath.Ext(d.Name()) == ".cmake" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
