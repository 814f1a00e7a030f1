package astgen

import (
	"errors"
	"sort"
	"strings"

	"github.com/vk/cmake2bazel/internal/cmakeparse"
)

// ErrInvalidInput is returned when Generate is handed something that is not
// a parse record.
var ErrInvalidInput = errors.New("astgen: input is not a parse record")

var scopeOrder = []cmakeparse.Scope{
	cmakeparse.ScopeInterface,
	cmakeparse.ScopePublic,
	cmakeparse.ScopePrivate,
}

// Generate converts a parse record into a typed node tree.
func Generate(record *cmakeparse.Record) (*Tree, error) {
	if record == nil {
		return nil, ErrInvalidInput
	}

	tree := &Tree{
		MinimumRequiredVersion: record.MinimumRequiredVersion,
		IncludeDirectories:     []*IncludeDirectoryNode{},
		Targets:                []*TargetNode{},
		Variables:              []*VariableNode{},
		CustomCommands:         []*CustomCommandNode{},
		CustomTargets:          []*CustomTargetNode{},
		CustomMacros:           []*CustomDefinitionNode{},
		CustomFunctions:        []*CustomDefinitionNode{},
	}

	if record.Project != "" {
		tree.Project = &ProjectNode{
			Kind:                   KindProject,
			Name:                   record.Project,
			MinimumRequiredVersion: record.MinimumRequiredVersion,
		}
	}

	for _, path := range record.IncludeDirectories {
		tree.IncludeDirectories = append(tree.IncludeDirectories, &IncludeDirectoryNode{
			Kind:     KindIncludeDirectory,
			Path:     path,
			Metadata: record.IncludeDirectoriesMeta[path],
		})
	}

	for _, target := range record.Targets {
		tree.Targets = append(tree.Targets, generateTarget(target))
	}

	tree.Variables = generateVariables(record.Variables)

	for _, cc := range record.CustomCommands {
		tree.CustomCommands = append(tree.CustomCommands, &CustomCommandNode{
			Kind:    KindCustomCommand,
			Command: cc,
		})
	}
	for _, ct := range record.CustomTargets {
		tree.CustomTargets = append(tree.CustomTargets, &CustomTargetNode{
			Kind:   KindCustomTarget,
			Target: ct,
		})
	}
	tree.CustomMacros = generateDefinitions(record.CustomMacros, KindCustomMacro)
	tree.CustomFunctions = generateDefinitions(record.CustomFunctions, KindCustomFunction)

	return tree, nil
}

func generateTarget(target *cmakeparse.TargetRecord) *TargetNode {
	node := &TargetNode{
		Kind:               KindTarget,
		TargetKind:         string(target.Kind),
		Name:               target.Name,
		Sources:            []*SourceFileNode{},
		Dependencies:       generateDependencies(&target.Dependencies),
		IncludeDirectories: generateTargetIncludeDirs(target),
		CompileDefinitions: target.CompileDefinitions,
		CompileOptions:     target.CompileOptions,
	}
	if node.CompileDefinitions == nil {
		node.CompileDefinitions = []string{}
	}
	if node.CompileOptions == nil {
		node.CompileOptions = []string{}
	}

	for _, src := range target.Sources {
		node.Sources = append(node.Sources, &SourceFileNode{
			Kind:     KindSourceFile,
			Path:     src,
			FileType: inferFileType(src),
		})
	}

	if target.Executable != nil {
		node.Options = target.Executable.Options
	}
	if target.Library != nil {
		node.LibraryType = target.Library.Type
		node.LibrarySpecifier = target.Library.Specifier
	}

	return node
}

// generateDependencies flattens the flat-or-scoped dependency shape into
// scope-tagged nodes. Flat entries are implicitly PRIVATE.
func generateDependencies(deps *cmakeparse.ScopedList) []*DependencyNode {
	nodes := []*DependencyNode{}

	appendNode := func(name string, scope cmakeparse.Scope) {
		nodes = append(nodes, &DependencyNode{
			Kind:           KindDependency,
			Name:           name,
			Scope:          string(scope),
			DependencyType: "library",
		})
	}

	if deps.IsScoped() {
		for _, scope := range scopeOrder {
			for _, name := range deps.Scoped[scope] {
				appendNode(name, scope)
			}
		}
		return nodes
	}
	for _, name := range deps.Flat {
		appendNode(name, cmakeparse.ScopePrivate)
	}
	return nodes
}

func generateTargetIncludeDirs(target *cmakeparse.TargetRecord) []*TargetIncludeDirectoryNode {
	nodes := []*TargetIncludeDirectoryNode{}

	appendNode := func(path string, scope cmakeparse.Scope) {
		var meta *cmakeparse.IncludeDirMeta
		if m, ok := target.IncludeDirsMeta[path]; ok {
			metaCopy := m
			meta = &metaCopy
		}
		nodes = append(nodes, &TargetIncludeDirectoryNode{
			Kind:     KindTargetIncludeDirectory,
			Path:     path,
			Scope:    string(scope),
			Metadata: meta,
		})
	}

	if target.IncludeDirs.IsScoped() {
		for _, scope := range scopeOrder {
			for _, path := range target.IncludeDirs.Scoped[scope] {
				appendNode(path, scope)
			}
		}
		return nodes
	}
	for _, path := range target.IncludeDirs.Flat {
		appendNode(path, cmakeparse.ScopePrivate)
	}
	return nodes
}

// generateVariables emits variable nodes in sorted name order so output is
// deterministic. A value holding the DSL's list separator is typed as a list.
func generateVariables(vars map[string]string) []*VariableNode {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]*VariableNode, 0, len(names))
	for _, name := range names {
		value := vars[name]
		varType := "string"
		if strings.Contains(value, ";") {
			varType = "list"
		}
		nodes = append(nodes, &VariableNode{
			Kind:         KindVariable,
			Name:         name,
			Value:        value,
			VariableType: varType,
		})
	}
	return nodes
}

func generateDefinitions(defs map[string]*cmakeparse.MacroDefinition, kind string) []*CustomDefinitionNode {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]*CustomDefinitionNode, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, &CustomDefinitionNode{
			Kind: kind,
			Name: name,
			Data: defs[name],
		})
	}
	return nodes
}
