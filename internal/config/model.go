package config

import "fmt"

// Output formats understood by the encoder.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Model is the unified settings for one converter run.
type Model struct {
	// Variables overrides or extends the parser's built-in variable
	// bindings before user set() statements are processed.
	Variables map[string]string

	Output Output
}

// Output selects how generated trees are written.
type Output struct {
	Format string
	Pretty bool
}

// Default returns the settings used when no settings file is given.
func Default() *Model {
	return &Model{
		Variables: map[string]string{},
		Output:    Output{Format: FormatJSON},
	}
}

// Validate checks the model for values the rest of the program cannot act on.
func (m *Model) Validate() error {
	switch m.Output.Format {
	case FormatJSON, FormatMsgpack:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be %q or %q", m.Output.Format, FormatJSON, FormatMsgpack)
	}
}
