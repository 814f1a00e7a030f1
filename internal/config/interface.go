package config

import "context"

// Loader is the interface for a format-specific settings loader. Load reads
// the settings file at path and translates it into the format-agnostic
// model; an empty path yields the defaults.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
