package cmakeparse

import (
	"regexp"
	"strings"
)

var (
	reIf     = regexp.MustCompile(`(?i)^if\s*\(\s*(.*?)\s*\)`)
	reElseIf = regexp.MustCompile(`(?i)^elseif\s*\(\s*(.*?)\s*\)`)
	reElse   = regexp.MustCompile(`(?i)^else\s*\(\s*\)`)
	reEndIf  = regexp.MustCompile(`(?i)^endif\s*\(\s*\)`)
)

// conditionalFrame is one nested if/elseif/else block on the processor's
// stack. hasExecuted latches once any branch of the block activates; no
// later branch may activate after that.
type conditionalFrame struct {
	condition   string
	active      bool
	hasExecuted bool
}

// filterConditionals walks the source line by line, maintaining a stack of
// nested conditional frames, and returns only the lines belonging to active
// branches. A line survives iff every frame on the stack is active; with an
// empty stack every line survives. Unbalanced blocks are tolerated: frames
// still open at end of input simply stop mattering.
func filterConditionals(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	var stack []*conditionalFrame

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if m := reIf.FindStringSubmatch(line); m != nil {
			active := evalCondition(m[1])
			stack = append(stack, &conditionalFrame{
				condition:   m[1],
				active:      active,
				hasExecuted: active,
			})
			continue
		}

		if m := reElseIf.FindStringSubmatch(line); m != nil && len(stack) > 0 {
			top := stack[len(stack)-1]
			if !top.hasExecuted {
				active := evalCondition(m[1])
				top.active = active
				top.hasExecuted = active
			} else {
				top.active = false
			}
			top.condition = m[1]
			continue
		}

		if reElse.MatchString(line) && len(stack) > 0 {
			top := stack[len(stack)-1]
			top.active = !top.hasExecuted
			continue
		}

		if reEndIf.MatchString(line) && len(stack) > 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		include := true
		for _, frame := range stack {
			if !frame.active {
				include = false
				break
			}
		}
		if include {
			out = append(out, raw)
		}
	}

	return strings.Join(out, "\n")
}
