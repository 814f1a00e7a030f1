package cmakeparse

// Scope is a CMake visibility scope keyword. It governs how a dependency or
// include path propagates to consumers of a target.
type Scope string

const (
	ScopeInterface Scope = "INTERFACE"
	ScopePublic    Scope = "PUBLIC"
	ScopePrivate   Scope = "PRIVATE"
)

// scopeOrder fixes the iteration order over scoped collections so that output
// is deterministic.
var scopeOrder = []Scope{ScopeInterface, ScopePublic, ScopePrivate}

func isScopeKeyword(s string) bool {
	switch Scope(s) {
	case ScopeInterface, ScopePublic, ScopePrivate:
		return true
	}
	return false
}

// ScopedList holds values that start life as a flat list (implicitly PRIVATE)
// and upgrade to a per-scope map the first time a scope-aware command touches
// them. The two shapes never coexist: after the upgrade all additions merge
// into the scoped map.
type ScopedList struct {
	Flat   []string           `json:"flat,omitempty" msgpack:"flat,omitempty"`
	Scoped map[Scope][]string `json:"scoped,omitempty" msgpack:"scoped,omitempty"`
}

// IsScoped reports whether the list has been upgraded to the scoped shape.
func (l *ScopedList) IsScoped() bool { return l.Scoped != nil }

// upgrade switches the list to the scoped shape with all three scopes
// present. Existing flat entries are discarded; in practice the upgrade only
// ever happens while the flat list is still empty.
func (l *ScopedList) upgrade() {
	if l.Scoped != nil {
		return
	}
	l.Scoped = map[Scope][]string{
		ScopeInterface: {},
		ScopePublic:    {},
		ScopePrivate:   {},
	}
	l.Flat = nil
}

// AppendScoped upgrades the list if needed and appends values into the named
// scope.
func (l *ScopedList) AppendScoped(scope Scope, values ...string) {
	l.upgrade()
	l.Scoped[scope] = append(l.Scoped[scope], values...)
}

// IncludeDirMeta records the SYSTEM and BEFORE/AFTER flags captured alongside
// a target-scoped include path.
type IncludeDirMeta struct {
	System   bool   `json:"system,omitempty" msgpack:"system,omitempty"`
	Position string `json:"position,omitempty" msgpack:"position,omitempty"`
}

// TargetKind discriminates the variant data attached to a TargetRecord.
type TargetKind string

const (
	TargetExecutable TargetKind = "executable"
	TargetLibrary    TargetKind = "library"
)

// ExecutableAttrs carries executable-only attributes.
type ExecutableAttrs struct {
	// Options is the optional keyword captured from the command: WIN32,
	// MACOSX_BUNDLE or EXCLUDE_FROM_ALL. Empty when absent.
	Options string `json:"options,omitempty" msgpack:"options,omitempty"`
}

// LibraryAttrs carries library-only attributes.
type LibraryAttrs struct {
	// Type is STATIC, SHARED, MODULE, INTERFACE or OBJECT. Defaults to STATIC.
	Type string `json:"type" msgpack:"type"`
	// Specifier is the optional IMPORTED, ALIAS or INTERFACE keyword.
	Specifier string `json:"specifier,omitempty" msgpack:"specifier,omitempty"`
}

// TargetRecord describes one build target extracted from the source. Exactly
// one of Executable or Library is non-nil, matching Kind; both are nil for an
// unrecognized kind.
type TargetRecord struct {
	Name    string     `json:"name" msgpack:"name"`
	Kind    TargetKind `json:"kind" msgpack:"kind"`
	Sources []string   `json:"sources" msgpack:"sources"`

	Dependencies ScopedList `json:"dependencies" msgpack:"dependencies"`
	IncludeDirs  ScopedList `json:"include_directories" msgpack:"include_directories"`
	// IncludeDirsMeta maps an include path to the flags captured with it.
	IncludeDirsMeta map[string]IncludeDirMeta `json:"include_directories_metadata,omitempty" msgpack:"include_directories_metadata,omitempty"`

	CompileDefinitions []string `json:"compile_definitions,omitempty" msgpack:"compile_definitions,omitempty"`
	CompileOptions     []string `json:"compile_options,omitempty" msgpack:"compile_options,omitempty"`

	Executable *ExecutableAttrs `json:"executable,omitempty" msgpack:"executable,omitempty"`
	Library    *LibraryAttrs    `json:"library,omitempty" msgpack:"library,omitempty"`
}

// CustomCommand is a near-verbatim capture of an add_custom_command call.
// No further interpretation is applied; Warning carries the advisory text for
// the downstream generator.
type CustomCommand struct {
	Args             []string `json:"args" msgpack:"args"`
	Output           []string `json:"output" msgpack:"output"`
	Command          []string `json:"command" msgpack:"command"`
	Depends          []string `json:"depends" msgpack:"depends"`
	WorkingDirectory string   `json:"working_directory,omitempty" msgpack:"working_directory,omitempty"`
	Comment          string   `json:"comment,omitempty" msgpack:"comment,omitempty"`
	Warning          string   `json:"warning,omitempty" msgpack:"warning,omitempty"`
}

// CustomTarget is a near-verbatim capture of an add_custom_target call.
type CustomTarget struct {
	Name             string   `json:"name" msgpack:"name"`
	Args             []string `json:"args" msgpack:"args"`
	Command          []string `json:"command" msgpack:"command"`
	Depends          []string `json:"depends" msgpack:"depends"`
	WorkingDirectory string   `json:"working_directory,omitempty" msgpack:"working_directory,omitempty"`
	Comment          string   `json:"comment,omitempty" msgpack:"comment,omitempty"`
	All              bool     `json:"all" msgpack:"all"`
	Warning          string   `json:"warning,omitempty" msgpack:"warning,omitempty"`
}

// MacroDefinition is a macro() or function() body captured verbatim between
// its opening statement and the matching end statement.
type MacroDefinition struct {
	Name    string   `json:"name" msgpack:"name"`
	Params  []string `json:"params" msgpack:"params"`
	Body    string   `json:"body" msgpack:"body"`
	Warning string   `json:"warning,omitempty" msgpack:"warning,omitempty"`
}

// Record is the output of one parse: project metadata, targets, scoped
// dependencies and include paths, custom build steps and macro/function
// definitions. Optional string fields are empty when the corresponding
// statement never appeared in the source.
type Record struct {
	Project                string `json:"project,omitempty" msgpack:"project,omitempty"`
	MinimumRequiredVersion string `json:"minimum_required_version,omitempty" msgpack:"minimum_required_version,omitempty"`

	IncludeDirectories []string `json:"include_directories" msgpack:"include_directories"`
	// IncludeDirectoriesMeta maps a path to the AFTER, BEFORE or SYSTEM
	// keyword it was captured with.
	IncludeDirectoriesMeta map[string]string `json:"include_directories_metadata,omitempty" msgpack:"include_directories_metadata,omitempty"`

	Targets []*TargetRecord `json:"targets" msgpack:"targets"`

	// Variables is the snapshot of the variable table after all set()
	// statements were processed.
	Variables map[string]string `json:"variables" msgpack:"variables"`

	CustomCommands  []*CustomCommand            `json:"custom_commands" msgpack:"custom_commands"`
	CustomTargets   []*CustomTarget             `json:"custom_targets" msgpack:"custom_targets"`
	CustomMacros    map[string]*MacroDefinition `json:"custom_macros" msgpack:"custom_macros"`
	CustomFunctions map[string]*MacroDefinition `json:"custom_functions" msgpack:"custom_functions"`
}

// FindTarget returns the target with the given name, or nil. Commands that
// reference an unknown target are dropped by their extraction pass; a
// reference never creates a record.
func (r *Record) FindTarget(name string) *TargetRecord {
	for _, t := range r.Targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}
