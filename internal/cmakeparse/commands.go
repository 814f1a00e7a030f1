package cmakeparse

import "regexp"

// One dedicated parser per command kind, composed by the pipeline in
// parser.go. The \b prefix keeps a command name from matching inside a longer
// one (include_directories inside target_include_directories, set inside
// offset, and so on).
var (
	reProject = regexp.MustCompile(`\bproject\s*\(\s*([^\s\)]+)`)

	reMinimumRequired = regexp.MustCompile(`\bcmake_minimum_required\s*\(\s*VERSION\s+([^\s\)]+)`)

	reIncludeDirectories = regexp.MustCompile(
		`(?s)\binclude_directories\s*\(\s*(?:(AFTER|BEFORE|SYSTEM)\s+)?(.*?)\)`)

	reAddExecutable = regexp.MustCompile(
		`(?s)\badd_executable\s*\(\s*([^\s\)]+)\s+(?:(WIN32|MACOSX_BUNDLE|EXCLUDE_FROM_ALL)\s+)?(?:SOURCES\s+)?(.*?)\)`)

	reAddLibrary = regexp.MustCompile(
		`(?s)\badd_library\s*\(\s*([^\s\)]+)\s+(?:(STATIC|SHARED|MODULE|INTERFACE|OBJECT)\s+)?(?:(IMPORTED|ALIAS|INTERFACE)\s*)?(?:SOURCES\s+)?(.*?)\)`)

	reTargetIncludeDirs = regexp.MustCompile(
		`(?s)\btarget_include_directories\s*\(\s*([^\s\)]+)\s+(?:(SYSTEM)\s+)?(?:(BEFORE|AFTER)\s+)?(INTERFACE|PUBLIC|PRIVATE)\s+(.*?)\)`)

	reTargetLinkLibraries = regexp.MustCompile(
		`(?s)\btarget_link_libraries\s*\(\s*([^\s\)]+)\s+(.*?)\)`)

	reTargetCompileDefs = regexp.MustCompile(
		`(?s)\btarget_compile_definitions\s*\(\s*([^\s\)]+)\s+(.*?)\)`)

	reTargetCompileOpts = regexp.MustCompile(
		`(?s)\btarget_compile_options\s*\(\s*([^\s\)]+)\s+(.*?)\)`)
)

// includeDirsCommand is the structured form of one include_directories call.
type includeDirsCommand struct {
	keyword string // AFTER, BEFORE or SYSTEM; empty when absent
	dirs    []string
}

func parseIncludeDirsCommands(content string) []includeDirsCommand {
	var cmds []includeDirsCommand
	for _, m := range reIncludeDirectories.FindAllStringSubmatch(content, -1) {
		cmds = append(cmds, includeDirsCommand{keyword: m[1], dirs: tokenizeArgs(m[2])})
	}
	return cmds
}

// executableCommand is the structured form of one add_executable call.
type executableCommand struct {
	name    string
	options string // WIN32, MACOSX_BUNDLE or EXCLUDE_FROM_ALL; empty when absent
	sources []string
}

func parseExecutableCommands(content string) []executableCommand {
	var cmds []executableCommand
	for _, m := range reAddExecutable.FindAllStringSubmatch(content, -1) {
		cmds = append(cmds, executableCommand{
			name:    m[1],
			options: m[2],
			sources: tokenizeArgs(m[3]),
		})
	}
	return cmds
}

// libraryCommand is the structured form of one add_library call, with the
// type/specifier precedence already applied: a missing type defaults to
// STATIC, an INTERFACE type or any specifier forces an empty source list, and
// an INTERFACE specifier also forces the type to INTERFACE.
type libraryCommand struct {
	name      string
	libType   string
	specifier string
	sources   []string
}

func parseLibraryCommands(content string) []libraryCommand {
	var cmds []libraryCommand
	for _, m := range reAddLibrary.FindAllStringSubmatch(content, -1) {
		cmd := libraryCommand{
			name:      m[1],
			libType:   m[2],
			specifier: m[3],
			sources:   tokenizeArgs(m[4]),
		}
		if cmd.libType == "" {
			cmd.libType = "STATIC"
		}
		if cmd.specifier == "INTERFACE" {
			cmd.libType = "INTERFACE"
		}
		if cmd.libType == "INTERFACE" || cmd.specifier != "" {
			cmd.sources = nil
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// targetIncludeDirsCommand is the structured form of one
// target_include_directories call.
type targetIncludeDirsCommand struct {
	target   string
	system   bool
	position string // BEFORE or AFTER; empty when absent
	scope    Scope
	dirs     []string
}

func parseTargetIncludeDirsCommands(content string) []targetIncludeDirsCommand {
	var cmds []targetIncludeDirsCommand
	for _, m := range reTargetIncludeDirs.FindAllStringSubmatch(content, -1) {
		cmds = append(cmds, targetIncludeDirsCommand{
			target:   m[1],
			system:   m[2] != "",
			position: m[3],
			scope:    Scope(m[4]),
			dirs:     tokenizeArgs(m[5]),
		})
	}
	return cmds
}

// linkLibrariesCommand is the structured form of one target_link_libraries
// call, with its token stream already split by scope.
type linkLibrariesCommand struct {
	target string
	deps   map[Scope][]string
}

func parseLinkLibrariesCommands(content string) []linkLibrariesCommand {
	var cmds []linkLibrariesCommand
	for _, m := range reTargetLinkLibraries.FindAllStringSubmatch(content, -1) {
		cmds = append(cmds, linkLibrariesCommand{
			target: m[1],
			deps:   splitLinkScopes(m[2]),
		})
	}
	return cmds
}

// splitLinkScopes walks a token stream where a scope keyword switches the
// current scope for the tokens after it. Until the first keyword the current
// scope is PRIVATE.
func splitLinkScopes(argsText string) map[Scope][]string {
	deps := map[Scope][]string{
		ScopeInterface: {},
		ScopePublic:    {},
		ScopePrivate:   {},
	}
	current := ScopePrivate
	for _, arg := range tokenizeArgs(argsText) {
		if isScopeKeyword(arg) {
			current = Scope(arg)
			continue
		}
		deps[current] = append(deps[current], arg)
	}
	return deps
}

// compileArgsCommand is the structured form of one target_compile_definitions
// or target_compile_options call. Scope keywords are dropped: the record
// keeps these as flat lists.
type compileArgsCommand struct {
	target string
	values []string
}

func parseCompileArgsCommands(content string, re *regexp.Regexp) []compileArgsCommand {
	var cmds []compileArgsCommand
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		cmd := compileArgsCommand{target: m[1]}
		for _, arg := range tokenizeArgs(m[2]) {
			if isScopeKeyword(arg) {
				continue
			}
			cmd.values = append(cmd.values, arg)
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}
