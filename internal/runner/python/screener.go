package python

import "strings"

var dangerousCalls = []string{"eval(", "exec(", "compile(", "open(", "__import__"}

// screen scans the raw source for banned module imports and dangerous call
// tokens, returning the first violation reason or "" when clean.
//
// This is a pre-flight cost filter, not a security boundary: it is a plain
// case-insensitive substring match that obfuscated code can evade. The real
// isolation is the separate OS process with a wall-clock kill switch; a
// clean screen result must never be treated as proof of safety.
func screen(source string, banned []string) string {
	lower := strings.ToLower(source)

	for _, mod := range banned {
		patterns := [4]string{
			"import " + mod,
			"from " + mod,
			"__import__('" + mod,
			`__import__("` + mod,
		}
		for _, p := range patterns {
			if strings.Contains(lower, p) {
				return "Restricted module detected: " + mod
			}
		}
	}

	for _, call := range dangerousCalls {
		if strings.Contains(lower, call) {
			return "Restricted function detected: " + strings.TrimSuffix(call, "(")
		}
	}
	return ""
}
