package astgen

import (
	"strings"

	"github.com/vk/cmake2bazel/internal/cmakeparse"
)

// Node kind discriminators. Every node carries its kind so consumers can
// walk a tree without reflection.
const (
	KindProject                = "project"
	KindIncludeDirectory       = "include_directory"
	KindSourceFile             = "source_file"
	KindDependency             = "dependency"
	KindTargetIncludeDirectory = "target_include_directory"
	KindTarget                 = "target"
	KindVariable               = "variable"
	KindCustomCommand          = "custom_command"
	KindCustomTarget           = "custom_target"
	KindCustomMacro            = "custom_macro"
	KindCustomFunction         = "custom_function"
)

// ProjectNode represents the project statement.
type ProjectNode struct {
	Kind                   string `json:"type" msgpack:"type"`
	Name                   string `json:"name" msgpack:"name"`
	MinimumRequiredVersion string `json:"minimum_required_version,omitempty" msgpack:"minimum_required_version,omitempty"`
}

// IncludeDirectoryNode represents one global include directory. Metadata is
// the AFTER, BEFORE or SYSTEM keyword the path was captured with, if any.
type IncludeDirectoryNode struct {
	Kind     string `json:"type" msgpack:"type"`
	Path     string `json:"path" msgpack:"path"`
	Metadata string `json:"metadata,omitempty" msgpack:"metadata,omitempty"`
}

// SourceFileNode represents one source file with its inferred language type.
type SourceFileNode struct {
	Kind     string `json:"type" msgpack:"type"`
	Path     string `json:"path" msgpack:"path"`
	FileType string `json:"file_type" msgpack:"file_type"`
}

// DependencyNode represents one link dependency of a target.
type DependencyNode struct {
	Kind           string `json:"type" msgpack:"type"`
	Name           string `json:"name" msgpack:"name"`
	Scope          string `json:"scope" msgpack:"scope"`
	DependencyType string `json:"dependency_type" msgpack:"dependency_type"`
}

// TargetIncludeDirectoryNode represents one target-scoped include directory.
type TargetIncludeDirectoryNode struct {
	Kind     string                     `json:"type" msgpack:"type"`
	Path     string                     `json:"path" msgpack:"path"`
	Scope    string                     `json:"scope" msgpack:"scope"`
	Metadata *cmakeparse.IncludeDirMeta `json:"metadata,omitempty" msgpack:"metadata,omitempty"`
}

// TargetNode represents a build target. TargetKind is "executable" or
// "library"; the Options field is executable-only, LibraryType and
// LibrarySpecifier are library-only.
type TargetNode struct {
	Kind               string                        `json:"type" msgpack:"type"`
	TargetKind         string                        `json:"target_type" msgpack:"target_type"`
	Name               string                        `json:"name" msgpack:"name"`
	Sources            []*SourceFileNode             `json:"sources" msgpack:"sources"`
	Dependencies       []*DependencyNode             `json:"dependencies" msgpack:"dependencies"`
	IncludeDirectories []*TargetIncludeDirectoryNode `json:"include_directories" msgpack:"include_directories"`
	CompileDefinitions []string                      `json:"compile_definitions" msgpack:"compile_definitions"`
	CompileOptions     []string                      `json:"compile_options" msgpack:"compile_options"`

	Options          string `json:"options,omitempty" msgpack:"options,omitempty"`
	LibraryType      string `json:"library_type,omitempty" msgpack:"library_type,omitempty"`
	LibrarySpecifier string `json:"library_specifier,omitempty" msgpack:"library_specifier,omitempty"`
}

// VariableNode represents one resolved variable binding.
type VariableNode struct {
	Kind         string `json:"type" msgpack:"type"`
	Name         string `json:"name" msgpack:"name"`
	Value        string `json:"value" msgpack:"value"`
	VariableType string `json:"variable_type" msgpack:"variable_type"`
}

// CustomCommandNode wraps a captured add_custom_command record.
type CustomCommandNode struct {
	Kind    string                    `json:"type" msgpack:"type"`
	Command *cmakeparse.CustomCommand `json:"command" msgpack:"command"`
}

// CustomTargetNode wraps a captured add_custom_target record.
type CustomTargetNode struct {
	Kind   string                   `json:"type" msgpack:"type"`
	Target *cmakeparse.CustomTarget `json:"target" msgpack:"target"`
}

// CustomDefinitionNode wraps a captured macro or function definition.
type CustomDefinitionNode struct {
	Kind string                      `json:"type" msgpack:"type"`
	Name string                      `json:"name" msgpack:"name"`
	Data *cmakeparse.MacroDefinition `json:"data" msgpack:"data"`
}

// Tree is the root of the generated node tree for one source document.
type Tree struct {
	Project                *ProjectNode            `json:"project" msgpack:"project"`
	MinimumRequiredVersion string                  `json:"minimum_required_version,omitempty" msgpack:"minimum_required_version,omitempty"`
	IncludeDirectories     []*IncludeDirectoryNode `json:"include_directories" msgpack:"include_directories"`
	Targets                []*TargetNode           `json:"targets" msgpack:"targets"`
	Variables              []*VariableNode         `json:"variables" msgpack:"variables"`
	CustomCommands         []*CustomCommandNode    `json:"custom_commands" msgpack:"custom_commands"`
	CustomTargets          []*CustomTargetNode     `json:"custom_targets" msgpack:"custom_targets"`
	CustomMacros           []*CustomDefinitionNode `json:"custom_macros" msgpack:"custom_macros"`
	CustomFunctions        []*CustomDefinitionNode `json:"custom_functions" msgpack:"custom_functions"`
}

// inferFileType maps a source path to a coarse language type by extension.
func inferFileType(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return "unknown"
	}
	switch strings.ToLower(path[idx+1:]) {
	case "cpp", "cxx", "cc":
		return "cpp"
	case "c":
		return "c"
	case "h", "hpp", "hxx", "hh":
		return "header"
	default:
		return "unknown"
	}
}
