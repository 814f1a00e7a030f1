package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cmake2bazel/internal/astgen"
	"github.com/vk/cmake2bazel/internal/config"
)

// stubLoader returns a fixed model or error, standing in for the HCL loader.
type stubLoader struct {
	model *config.Model
	err   error
}

func (l *stubLoader) Load(ctx context.Context, path string) (*config.Model, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.model, nil
}

func writeCMakeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CMakeLists.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewApp_PanicsWhenSettingsFailToLoad(t *testing.T) {
	t.Parallel()

	cfg := &Config{InputPath: "x", LogLevel: "info", LogFormat: "text"}
	loader := &stubLoader{err: errors.New("boom")}

	assert.PanicsWithError(t, "failed to load settings: boom", func() {
		NewApp(&SafeBuffer{}, &SafeBuffer{}, cfg, loader)
	})
}

func TestNewApp_FlagsOverrideSettings(t *testing.T) {
	t.Parallel()

	model := config.Default()
	model.Output.Format = config.FormatMsgpack

	cfg := &Config{InputPath: "x", OutputFormat: config.FormatJSON, Pretty: true}
	testApp, _, _ := SetupAppTest(t, cfg, &stubLoader{model: model})

	assert.Equal(t, config.FormatJSON, testApp.Settings().Output.Format)
	assert.True(t, testApp.Settings().Output.Pretty)
}

func TestAppRun_ConvertsFileToJSON(t *testing.T) {
	t.Parallel()

	// Arrange
	path := writeCMakeFile(t, `
project(Demo)
add_executable(app main.cpp)
target_link_libraries(app PUBLIC mylib)
`)
	cfg := &Config{InputPath: path}
	testApp, outBuffer, _ := SetupAppTest(t, cfg, nil)

	// Act
	err := testApp.Run(context.Background(), cfg)

	// Assert
	require.NoError(t, err)
	var tree astgen.Tree
	require.NoError(t, json.Unmarshal([]byte(outBuffer.String()), &tree))
	require.NotNil(t, tree.Project)
	assert.Equal(t, "Demo", tree.Project.Name)
	require.Len(t, tree.Targets, 1)
	assert.Equal(t, "app", tree.Targets[0].Name)
	require.Len(t, tree.Targets[0].Dependencies, 1)
	assert.Equal(t, "mylib", tree.Targets[0].Dependencies[0].Name)
	assert.Equal(t, "PUBLIC", tree.Targets[0].Dependencies[0].Scope)
}

func TestAppRun_SettingsVariablesReachTheParser(t *testing.T) {
	t.Parallel()

	path := writeCMakeFile(t, "project(${APP_NAME})\nadd_executable(${APP_NAME} main.cpp)\n")

	model := config.Default()
	model.Variables = map[string]string{"APP_NAME": "Injected"}

	cfg := &Config{InputPath: path}
	testApp, outBuffer, _ := SetupAppTest(t, cfg, &stubLoader{model: model})

	require.NoError(t, testApp.Run(context.Background(), cfg))

	var tree astgen.Tree
	require.NoError(t, json.Unmarshal([]byte(outBuffer.String()), &tree))
	require.Len(t, tree.Targets, 1)
	assert.Equal(t, "Injected", tree.Targets[0].Name)
}

func TestAppRun_AdvisoryWarningsAreReported(t *testing.T) {
	t.Parallel()

	path := writeCMakeFile(t, `
project(Demo)
add_custom_target(docs COMMAND doxygen)
macro(helper)
endmacro()
`)
	cfg := &Config{InputPath: path}
	testApp, _, logBuffer := SetupAppTest(t, cfg, nil)

	require.NoError(t, testApp.Run(context.Background(), cfg))

	logs := logBuffer.String()
	assert.Contains(t, logs, "Custom targets require manual conversion to Bazel rules")
	assert.Contains(t, logs, `Macro "helper" requires manual conversion`)
}

func TestAppRun_DirectoryInput(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "CMakeLists.txt"), []byte("project(One)\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "CMakeLists.txt"), []byte("project(Two)\n"), 0o644))

	cfg := &Config{InputPath: root}
	testApp, outBuffer, _ := SetupAppTest(t, cfg, nil)

	require.NoError(t, testApp.Run(context.Background(), cfg))

	// One JSON document per discovered file.
	dec := json.NewDecoder(strings.NewReader(outBuffer.String()))
	var count int
	for dec.More() {
		var tree astgen.Tree
		require.NoError(t, dec.Decode(&tree))
		count++
	}
	assert.Equal(t, 2, count)
}

func TestAppRun_NoFilesFoundIsNotAnError(t *testing.T) {
	t.Parallel()

	cfg := &Config{InputPath: t.TempDir()}
	testApp, outBuffer, logBuffer := SetupAppTest(t, cfg, nil)

	require.NoError(t, testApp.Run(context.Background(), cfg))

	assert.Empty(t, outBuffer.String())
	assert.Contains(t, logBuffer.String(), "No CMake files found")
}

func TestAppRun_MissingInputPathErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{InputPath: filepath.Join(t.TempDir(), "absent")}
	testApp, _, _ := SetupAppTest(t, cfg, nil)

	err := testApp.Run(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "discovering cmake files")
}

func TestAppRun_OutputFileTarget(t *testing.T) {
	t.Parallel()

	path := writeCMakeFile(t, "project(Demo)\n")
	outPath := filepath.Join(t.TempDir(), "tree.json")

	cfg := &Config{InputPath: path, OutputPath: outPath}
	testApp, outBuffer, _ := SetupAppTest(t, cfg, nil)

	require.NoError(t, testApp.Run(context.Background(), cfg))

	assert.Empty(t, outBuffer.String())
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var tree astgen.Tree
	require.NoError(t, json.Unmarshal(data, &tree))
	assert.Equal(t, "Demo", tree.Project.Name)
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("requires an input path", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{})
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("passes a populated config through", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{InputPath: "dir"})
		require.NoError(t, err)
		assert.Equal(t, "dir", cfg.InputPath)
	})
}
