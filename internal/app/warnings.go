package app

import (
	"sort"

	"github.com/fatih/color"

	"github.com/vk/cmake2bazel/internal/cmakeparse"
)

// reportAdvisories prints the manual-conversion notices captured on custom
// commands, custom targets and macro/function definitions. They are advisory
// only; conversion still proceeds.
func (a *App) reportAdvisories(path string, record *cmakeparse.Record) {
	warn := color.New(color.FgYellow)

	emit := func(message string) {
		if message == "" {
			return
		}
		warn.Fprintf(a.errW, "%s: %s\n", path, message)
		a.logger.Warn("Manual conversion required.", "path", path, "detail", message)
	}

	for _, cc := range record.CustomCommands {
		emit(cc.Warning)
	}
	for _, ct := range record.CustomTargets {
		emit(ct.Warning)
	}
	for _, name := range sortedDefinitionNames(record.CustomMacros) {
		emit(record.CustomMacros[name].Warning)
	}
	for _, name := range sortedDefinitionNames(record.CustomFunctions) {
		emit(record.CustomFunctions[name].Warning)
	}
}

func sortedDefinitionNames(defs map[string]*cmakeparse.MacroDefinition) []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
