package cmakeparse

import (
	"regexp"
	"strings"
)

// maxResolveIterations bounds the scan-and-substitute cycle so circular
// definitions terminate with whatever partial resolution has been reached.
const maxResolveIterations = 10

var reSet = regexp.MustCompile(`(?s)\bset\s*\(\s*([^\s\)]+)(?:\s+(.*?))?\)`)

// Variables holds the name→value bindings consulted by every extraction
// pass: built-ins seeded up front, then user set() statements in file order.
// A table belongs to a single parse and is never shared.
type Variables struct {
	values map[string]string
}

func newVariables() *Variables {
	v := &Variables{values: make(map[string]string)}
	v.seedBuiltins()
	return v
}

// seedBuiltins installs the fixed placeholder bindings present before any
// user statement is processed.
func (v *Variables) seedBuiltins() {
	for name, value := range map[string]string{
		"CMAKE_CURRENT_SOURCE_DIR": ".",
		"CMAKE_CURRENT_BINARY_DIR": ".",
		"CMAKE_SOURCE_DIR":         ".",
		"CMAKE_BINARY_DIR":         ".",
		"PROJECT_SOURCE_DIR":       ".",
		"PROJECT_BINARY_DIR":       ".",
		"CMAKE_SYSTEM_NAME":        "Linux",
		"CMAKE_SYSTEM_VERSION":     "1.0",
		"CMAKE_SYSTEM_PROCESSOR":   "x86_64",
		"CMAKE_CXX_COMPILER_ID":    "GNU",
		"CMAKE_C_COMPILER_ID":      "GNU",
		"CMAKE_BUILD_TYPE":         "Release",
		"CMAKE_INSTALL_PREFIX":     "/usr/local",
	} {
		v.values[name] = value
	}
}

// Set binds name to value, replacing any previous binding.
func (v *Variables) Set(name, value string) {
	v.values[name] = value
}

// Get returns the binding for name.
func (v *Variables) Get(name string) (string, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Snapshot returns a copy of the table for inclusion in the Record.
func (v *Variables) Snapshot() map[string]string {
	out := make(map[string]string, len(v.values))
	for name, value := range v.values {
		out[name] = value
	}
	return out
}

// varRef is one outermost ${...} span located in a string. name is the inner
// content, which may itself contain nested references.
type varRef struct {
	start, end int
	name       string
}

// findVarRefs locates the outermost ${...} spans using balanced-brace
// matching, so ${A${B}} is reported as one span with inner content A${B}.
// Spans with unmatched braces are skipped.
func findVarRefs(s string) []varRef {
	var refs []varRef
	for i := 0; i < len(s); {
		if i+1 < len(s) && s[i] == '$' && s[i+1] == '{' {
			start := i
			i += 2
			nameStart := i
			depth := 1
			for i < len(s) && depth > 0 {
				switch s[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				i++
			}
			if depth == 0 {
				refs = append(refs, varRef{start: start, end: i, name: s[nameStart : i-1]})
			} else {
				i = start + 1
			}
		} else {
			i++
		}
	}
	return refs
}

// Resolve rewrites every ${...} reference in text to its bound value. Nested
// references resolve innermost-first; an absent name resolves to the empty
// string. The cycle repeats until no references remain or the iteration cap
// is reached, so circular definitions terminate rather than loop.
func (v *Variables) Resolve(text string) string {
	resolved := text
	for iter := 0; iter < maxResolveIterations; iter++ {
		refs := findVarRefs(resolved)
		if len(refs) == 0 {
			break
		}
		// Substitute rightmost-first so earlier offsets stay valid.
		for i := len(refs) - 1; i >= 0; i-- {
			ref := refs[i]
			name := ref.name
			if strings.Contains(name, "${") {
				name = v.Resolve(name)
			}
			resolved = resolved[:ref.start] + v.values[name] + resolved[ref.end:]
		}
	}
	return resolved
}

// extractDefinitions processes set() statements in file order. Values are
// first collected raw, then resolved one by one against the table being
// built, so a later set() may reference an earlier one but not vice versa.
// Zero arguments bind the empty string; multiple arguments are joined with
// the DSL's list separator.
func (v *Variables) extractDefinitions(content string) {
	raw := make(map[string]string)
	var order []string

	for _, m := range reSet.FindAllStringSubmatch(content, -1) {
		name := m[1]
		args := tokenizeArgs(m[2])

		var value string
		switch len(args) {
		case 0:
			value = ""
		case 1:
			value = args[0]
		default:
			value = strings.Join(args, ";")
		}

		if _, seen := raw[name]; !seen {
			order = append(order, name)
		}
		raw[name] = value
	}

	for _, name := range order {
		if value := raw[name]; value != "" {
			v.values[name] = v.Resolve(value)
		} else {
			v.values[name] = ""
		}
	}
}
