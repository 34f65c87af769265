package internal

import (
	"fmt"
	"regexp"
	"strings"
)

// preludeWildcard re-exports every alias, so any file importing it is
// already covered.
const preludeWildcard = "use crate::prelude::*;"

// HasImport reports whether decl is already effectively in scope in the
// file content. Three forms count: the exact declaration, the symbol
// appearing inside a brace list on the same module path, and the prelude
// wildcard. Brace lists are matched up to the first closing brace on a
// single line; a brace list split across multiple lines is not detected.
// That boundary is deliberate and covered by tests.
func HasImport(content, decl string) bool {
	if strings.Contains(content, decl) {
		return true
	}

	if module, symbol, ok := splitDecl(decl); ok {
		braced := fmt.Sprintf(`use %s::\{[^}\n]*%s[^}\n]*\};`,
			regexp.QuoteMeta(module), regexp.QuoteMeta(symbol))
		if regexp.MustCompile(braced).MatchString(content) {
			return true
		}
	}

	return strings.Contains(content, preludeWildcard)
}

// AddImport returns content with decl inserted. The caller must have
// confirmed the declaration absent. The new line goes immediately after
// the last existing use line; if the file has none, it goes before the
// first non-comment, non-blank line, followed by one blank line, keeping
// the conventional "imports, blank line, code" layout.
func AddImport(content, decl string) string {
	lines := strings.Split(content, "\n")

	lastUse := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "use ") {
			lastUse = i
		}
	}
	if lastUse >= 0 {
		return strings.Join(insertLines(lines, lastUse+1, decl), "\n")
	}

	insert := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "//") {
			insert = i
			break
		}
	}
	return strings.Join(insertLines(lines, insert, decl, ""), "\n")
}

// splitDecl breaks "use a::b::Symbol;" into its module path and symbol.
func splitDecl(decl string) (module, symbol string, ok bool) {
	path := strings.TrimSpace(decl)
	path = strings.TrimPrefix(path, "use ")
	path = strings.TrimSuffix(path, ";")

	idx := strings.LastIndex(path, "::")
	if idx < 0 {
		return "", "", false
	}
	return path[:idx], path[idx+2:], true
}

func insertLines(lines []string, at int, add ...string) []string {
	out := make([]string, 0, len(lines)+len(add))
	out = append(out, lines[:at]...)
	out = append(out, add...)
	out = append(out, lines[at:]...)
	return out
}
