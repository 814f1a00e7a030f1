// Package encode serializes generated trees to the configured wire format.
package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vk/cmake2bazel/internal/astgen"
	"github.com/vk/cmake2bazel/internal/config"
)

// Tree writes one generated tree to w in the format named by the settings.
func Tree(w io.Writer, tree *astgen.Tree, output config.Output) error {
	switch output.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		if output.Pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encoding tree as json: %w", err)
		}
		return nil
	case config.FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(tree); err != nil {
			return fmt.Errorf("encoding tree as msgpack: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", output.Format)
	}
}
