package cmakeparse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vk/cmake2bazel/internal/ctxlog"
)

// Options configures a Parser.
type Options struct {
	// BuiltinOverrides replaces or extends the seeded built-in variable
	// bindings before any set() statement is processed.
	BuiltinOverrides map[string]string
}

// Parser converts CMake source text into a Record. It holds no mutable parse
// state itself; every ParseString call builds a fresh state bundle, so a
// Record is a pure function of the input text. Use one Parser (or at least
// one state bundle) per source document and never share a parse across
// goroutines.
type Parser struct {
	opts Options
}

// New returns a Parser with default options.
func New() *Parser {
	return NewWithOptions(Options{})
}

// NewWithOptions returns a Parser with the given options.
func NewWithOptions(opts Options) *Parser {
	return &Parser{opts: opts}
}

// ParseFile reads and parses the CMake file at path. A missing file and a
// read failure are the only fatal errors in the pipeline; everything past the
// file boundary is lenient.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Record, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cmake file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("reading cmake file %s: %w", path, err)
	}
	logger.Debug("CMake file read.", "path", path, "bytes", len(data))

	return p.ParseString(ctx, string(data)), nil
}

// ParseString parses CMake source text. It never fails: a construct that no
// pass recognizes is simply absent from the Record.
func (p *Parser) ParseString(ctx context.Context, content string) *Record {
	st := newParseState(p.opts)
	return st.run(ctx, content)
}

// parseState is the caller-owned state bundle for a single parse: the
// variable table plus the record under construction. It is created fresh per
// document and discarded afterwards.
type parseState struct {
	vars *Variables
}

func newParseState(opts Options) *parseState {
	st := &parseState{vars: newVariables()}
	for name, value := range opts.BuiltinOverrides {
		st.vars.Set(name, value)
	}
	return st
}

// run executes the fixed pass sequence: conditional filtering, project
// capture, variable extraction, resolution, multi-line normalization, then
// the per-command extraction passes. Later passes depend on targets created
// by earlier ones.
func (s *parseState) run(ctx context.Context, content string) *Record {
	logger := ctxlog.FromContext(ctx)

	rec := &Record{
		IncludeDirectories: []string{},
		Targets:            []*TargetRecord{},
		CustomCommands:     []*CustomCommand{},
		CustomTargets:      []*CustomTarget{},
	}

	processed := filterConditionals(content)

	// The project name binds PROJECT_NAME ahead of general variable
	// extraction, so later statements may reference it.
	if m := reProject.FindStringSubmatch(processed); m != nil {
		rec.Project = m[1]
		s.vars.Set("PROJECT_NAME", m[1])
	}

	s.vars.extractDefinitions(processed)
	resolved := s.vars.Resolve(processed)

	if m := reMinimumRequired.FindStringSubmatch(resolved); m != nil {
		rec.MinimumRequiredVersion = m[1]
	}

	normalized := normalizeMultiline(resolved)

	s.extractIncludeDirectories(normalized, rec)
	s.extractExecutables(normalized, rec)
	s.extractLibraries(normalized, rec)
	s.extractTargetIncludeDirectories(normalized, rec)
	s.extractLinkDependencies(normalized, rec)
	s.extractCompileArgs(normalized, rec)
	s.extractCustomDefinitions(normalized, rec)

	rec.Variables = s.vars.Snapshot()

	logger.Debug("Parse complete.",
		"targets", len(rec.Targets),
		"include_directories", len(rec.IncludeDirectories),
		"custom_commands", len(rec.CustomCommands),
		"custom_targets", len(rec.CustomTargets),
		"macros", len(rec.CustomMacros),
		"functions", len(rec.CustomFunctions),
	)
	return rec
}

func (s *parseState) extractIncludeDirectories(content string, rec *Record) {
	for _, cmd := range parseIncludeDirsCommands(content) {
		if cmd.keyword != "" {
			if rec.IncludeDirectoriesMeta == nil {
				rec.IncludeDirectoriesMeta = make(map[string]string)
			}
			for _, dir := range cmd.dirs {
				rec.IncludeDirectoriesMeta[dir] = cmd.keyword
			}
		}
		rec.IncludeDirectories = append(rec.IncludeDirectories, cmd.dirs...)
	}
}

func (s *parseState) extractExecutables(content string, rec *Record) {
	for _, cmd := range parseExecutableCommands(content) {
		rec.Targets = append(rec.Targets, &TargetRecord{
			Name:       cmd.name,
			Kind:       TargetExecutable,
			Sources:    cmd.sources,
			Executable: &ExecutableAttrs{Options: cmd.options},
		})
	}
}

func (s *parseState) extractLibraries(content string, rec *Record) {
	for _, cmd := range parseLibraryCommands(content) {
		rec.Targets = append(rec.Targets, &TargetRecord{
			Name:    cmd.name,
			Kind:    TargetLibrary,
			Sources: cmd.sources,
			Library: &LibraryAttrs{Type: cmd.libType, Specifier: cmd.specifier},
		})
	}
}

func (s *parseState) extractTargetIncludeDirectories(content string, rec *Record) {
	for _, cmd := range parseTargetIncludeDirsCommands(content) {
		target := rec.FindTarget(cmd.target)
		if target == nil {
			// Reference to an unknown target; dropped silently.
			continue
		}

		target.IncludeDirs.AppendScoped(cmd.scope, cmd.dirs...)

		if cmd.system || cmd.position != "" {
			if target.IncludeDirsMeta == nil {
				target.IncludeDirsMeta = make(map[string]IncludeDirMeta)
			}
			for _, dir := range cmd.dirs {
				target.IncludeDirsMeta[dir] = IncludeDirMeta{
					System:   cmd.system,
					Position: cmd.position,
				}
			}
		}
	}
}

func (s *parseState) extractLinkDependencies(content string, rec *Record) {
	for _, cmd := range parseLinkLibrariesCommands(content) {
		target := rec.FindTarget(cmd.target)
		if target == nil {
			continue
		}
		// Multiple commands against the same target accumulate.
		for _, scope := range scopeOrder {
			if deps := cmd.deps[scope]; len(deps) > 0 {
				target.Dependencies.AppendScoped(scope, deps...)
			} else {
				target.Dependencies.upgrade()
			}
		}
	}
}

func (s *parseState) extractCompileArgs(content string, rec *Record) {
	for _, cmd := range parseCompileArgsCommands(content, reTargetCompileDefs) {
		if target := rec.FindTarget(cmd.target); target != nil {
			target.CompileDefinitions = append(target.CompileDefinitions, cmd.values...)
		}
	}
	for _, cmd := range parseCompileArgsCommands(content, reTargetCompileOpts) {
		if target := rec.FindTarget(cmd.target); target != nil {
			target.CompileOptions = append(target.CompileOptions, cmd.values...)
		}
	}
}

func (s *parseState) extractCustomDefinitions(content string, rec *Record) {
	for _, m := range reAddCustomCommand.FindAllStringSubmatch(content, -1) {
		rec.CustomCommands = append(rec.CustomCommands, parseCustomCommand(m[1]))
	}
	for _, m := range reAddCustomTarget.FindAllStringSubmatch(content, -1) {
		rec.CustomTargets = append(rec.CustomTargets, parseCustomTarget(m[1], m[2]))
	}
	rec.CustomMacros = extractBlockDefinitions(content, reMacro, reEndMacro, warnMacroFormat)
	rec.CustomFunctions = extractBlockDefinitions(content, reFunction, reEndFunction, warnFunctionFormat)
}
