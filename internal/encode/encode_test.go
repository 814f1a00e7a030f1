package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vk/cmake2bazel/internal/astgen"
	"github.com/vk/cmake2bazel/internal/config"
)

func sampleTree() *astgen.Tree {
	return &astgen.Tree{
		Project: &astgen.ProjectNode{Kind: astgen.KindProject, Name: "Demo"},
		Targets: []*astgen.TargetNode{{
			Kind:       astgen.KindTarget,
			TargetKind: "executable",
			Name:       "app",
		}},
	}
}

func TestTree_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Tree(&buf, sampleTree(), config.Output{Format: config.FormatJSON})
	require.NoError(t, err)

	var decoded astgen.Tree
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.NotNil(t, decoded.Project)
	assert.Equal(t, "Demo", decoded.Project.Name)
	require.Len(t, decoded.Targets, 1)
	assert.Equal(t, "app", decoded.Targets[0].Name)
	// Compact by default.
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestTree_JSONPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Tree(&buf, sampleTree(), config.Output{Format: config.FormatJSON, Pretty: true})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "\n  \"project\"")
}

func TestTree_Msgpack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Tree(&buf, sampleTree(), config.Output{Format: config.FormatMsgpack})
	require.NoError(t, err)

	var decoded astgen.Tree
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	require.NotNil(t, decoded.Project)
	assert.Equal(t, "Demo", decoded.Project.Name)
}

func TestTree_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Tree(&bytes.Buffer{}, sampleTree(), config.Output{Format: "xml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported output format "xml"`)
}
