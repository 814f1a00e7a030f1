package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("project(x)\n"), 0o644))
}

func TestFindCMakeFiles(t *testing.T) {
	t.Parallel()

	t.Run("plain file is returned as-is", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.txt")
		touch(t, path)

		files, err := FindCMakeFiles(path)

		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("directory is walked recursively", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		touch(t, filepath.Join(root, "CMakeLists.txt"))
		touch(t, filepath.Join(root, "sub", "CMakeLists.txt"))
		touch(t, filepath.Join(root, "cmake", "toolchain.cmake"))
		touch(t, filepath.Join(root, "src", "main.cpp"))

		files, err := FindCMakeFiles(root)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "CMakeLists.txt"),
			filepath.Join(root, "sub", "CMakeLists.txt"),
			filepath.Join(root, "cmake", "toolchain.cmake"),
		}, files)
	})

	t.Run("directory without build files yields none", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		touch(t, filepath.Join(root, "main.cpp"))

		files, err := FindCMakeFiles(root)

		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path errors", func(t *testing.T) {
		t.Parallel()
		files, err := FindCMakeFiles(filepath.Join(t.TempDir(), "nope"))

		require.Error(t, err)
		assert.Nil(t, files)
		assert.Contains(t, err.Error(), "accessing path")
	})
}
