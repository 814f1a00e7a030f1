package cmakeparse

import "strings"

// evalCondition evaluates a single condition expression to a boolean using a
// fixed, conservative rule set. Predicates the evaluator does not understand
// resolve to true on purpose: an unsupported condition must never suppress
// extraction of the targets it guards.
func evalCondition(condition string) bool {
	cond := strings.TrimSpace(condition)
	if cond == "" {
		return false
	}

	upper := strings.ToUpper(cond)
	switch upper {
	case "TRUE", "ON", "YES", "1":
		return true
	case "FALSE", "OFF", "NO", "0":
		return false
	}

	if strings.HasPrefix(upper, "NOT ") {
		return !evalCondition(strings.TrimSpace(cond[4:]))
	}

	// Existence is not actually checked.
	if strings.HasPrefix(upper, "DEFINED ") {
		return true
	}

	if strings.Contains(upper, " STREQUAL ") {
		parts := strings.Fields(cond)
		if len(parts) >= 3 {
			left := strings.Trim(parts[0], `"'`)
			right := strings.Trim(parts[2], `"'`)
			return left == right
		}
	}

	for _, op := range []string{" VERSION_GREATER ", " VERSION_LESS ", " VERSION_EQUAL "} {
		if strings.Contains(upper, op) {
			return true
		}
	}

	if strings.HasPrefix(upper, "EXISTS ") {
		return true
	}

	// A bare variable reference is assumed truthy.
	if strings.HasPrefix(cond, "${") && strings.HasSuffix(cond, "}") {
		return true
	}

	// Anything else, including plain variable names, defaults to true.
	return true
}
