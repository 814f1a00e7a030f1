package cmakeparse

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reAddCustomCommand = regexp.MustCompile(`(?s)\badd_custom_command\s*\(\s*(.*?)\)`)
	reAddCustomTarget  = regexp.MustCompile(`(?s)\badd_custom_target\s*\(\s*([^\s\)]+)\s+(.*?)\)`)

	reMacro       = regexp.MustCompile(`^macro\s*\(\s*([^\s\)]+)(?:\s+(.*?))?\)`)
	reEndMacro    = regexp.MustCompile(`(?i)^endmacro\s*\(\s*\)`)
	reFunction    = regexp.MustCompile(`^function\s*\(\s*([^\s\)]+)(?:\s+(.*?))?\)`)
	reEndFunction = regexp.MustCompile(`(?i)^endfunction\s*\(\s*\)`)
)

// Advisory strings attached to the captured records. The downstream generator
// surfaces these to the user verbatim.
const (
	warnCustomCommandEmpty = "Custom command has no OUTPUT or COMMAND - may not be fully supported in Bazel"
	warnCustomCommand      = "Custom commands require manual conversion to Bazel genrule or custom rule"
	warnCustomTarget       = "Custom targets require manual conversion to Bazel rules"
	warnMacroFormat        = "Macro %q requires manual conversion - macros are not directly supported in Bazel"
	warnFunctionFormat     = "Function %q requires manual conversion - functions are not directly supported in Bazel"
)

func tokenIn(tok string, set ...string) bool {
	for _, s := range set {
		if tok == s {
			return true
		}
	}
	return false
}

// parseCustomCommand captures one add_custom_command call as a keyword-tagged
// record. Tokens after each keyword accumulate until the next keyword.
func parseCustomCommand(argsText string) *CustomCommand {
	args := tokenizeArgs(argsText)
	cc := &CustomCommand{
		Args:    args,
		Output:  []string{},
		Command: []string{},
		Depends: []string{},
	}

	for i := 0; i < len(args); {
		switch args[i] {
		case "OUTPUT":
			i++
			for i < len(args) && !tokenIn(args[i], "COMMAND", "DEPENDS", "WORKING_DIRECTORY", "COMMENT") {
				cc.Output = append(cc.Output, args[i])
				i++
			}
		case "COMMAND":
			i++
			for i < len(args) && !tokenIn(args[i], "OUTPUT", "DEPENDS", "WORKING_DIRECTORY", "COMMENT") {
				cc.Command = append(cc.Command, args[i])
				i++
			}
		case "DEPENDS":
			i++
			for i < len(args) && !tokenIn(args[i], "OUTPUT", "COMMAND", "WORKING_DIRECTORY", "COMMENT") {
				cc.Depends = append(cc.Depends, args[i])
				i++
			}
		case "WORKING_DIRECTORY":
			i++
			if i < len(args) {
				cc.WorkingDirectory = args[i]
				i++
			}
		case "COMMENT":
			i++
			if i < len(args) {
				cc.Comment = args[i]
				i++
			}
		default:
			i++
		}
	}

	if len(cc.Output) == 0 && len(cc.Command) == 0 {
		cc.Warning = warnCustomCommandEmpty
	} else if len(cc.Command) > 0 {
		cc.Warning = warnCustomCommand
	}

	return cc
}

// parseCustomTarget captures one add_custom_target call. The first
// non-keyword token doubles as the command when no COMMAND keyword appeared.
func parseCustomTarget(name, argsText string) *CustomTarget {
	args := tokenizeArgs(argsText)
	ct := &CustomTarget{
		Name:    name,
		Args:    args,
		Command: []string{},
		Depends: []string{},
		Warning: warnCustomTarget,
	}

	for i := 0; i < len(args); {
		switch args[i] {
		case "ALL":
			ct.All = true
			i++
		case "COMMAND":
			i++
			for i < len(args) && !tokenIn(args[i], "DEPENDS", "WORKING_DIRECTORY", "COMMENT") {
				ct.Command = append(ct.Command, args[i])
				i++
			}
		case "DEPENDS":
			i++
			for i < len(args) && !tokenIn(args[i], "COMMAND", "WORKING_DIRECTORY", "COMMENT") {
				ct.Depends = append(ct.Depends, args[i])
				i++
			}
		case "WORKING_DIRECTORY":
			i++
			if i < len(args) {
				ct.WorkingDirectory = args[i]
				i++
			}
		case "COMMENT":
			i++
			if i < len(args) {
				ct.Comment = args[i]
				i++
			}
		default:
			if len(ct.Command) == 0 {
				ct.Command = append(ct.Command, args[i])
			}
			i++
		}
	}

	return ct
}

// extractBlockDefinitions collects macro() or function() definitions: name,
// parameter list, and verbatim body text up to the matching end statement.
// A later definition with the same name overwrites an earlier one.
func extractBlockDefinitions(content string, open, end *regexp.Regexp, warnFormat string) map[string]*MacroDefinition {
	defs := make(map[string]*MacroDefinition)
	lines := strings.Split(content, "\n")

	for i := 0; i < len(lines); i++ {
		m := open.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}
		name := m[1]
		params := tokenizeArgs(m[2])
		if params == nil {
			params = []string{}
		}

		var body []string
		i++
		for i < len(lines) && !end.MatchString(strings.TrimSpace(lines[i])) {
			body = append(body, lines[i])
			i++
		}

		defs[name] = &MacroDefinition{
			Name:    name,
			Params:  params,
			Body:    strings.Join(body, "\n"),
			Warning: fmt.Sprintf(warnFormat, name),
		}
	}

	return defs
}
