package internal

import (
	"os"
	"sort"

	tt "github.com/runelabs/realias/internal/types"
)

// Engine applies the rewrite rule set to files, one at a time. It holds no
// per-file state, so repeated calls on the same engine are independent.
type Engine struct {
	rules       []Rule
	ignorePaths []string
	dryRun      bool
}

// NewEngine creates an engine for the given rule set. With dryRun set,
// rewrites are computed and reported but never written back.
func NewEngine(rules []Rule, dryRun bool) *Engine {
	return &Engine{rules: rules, dryRun: dryRun}
}

// Rules returns the active rule set in application order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// IgnorePath excludes any file whose path contains the given substring.
func (e *Engine) IgnorePath(path string) {
	e.ignorePaths = append(e.ignorePaths, path)
}

// IgnoredPaths returns the configured ignore list.
func (e *Engine) IgnoredPaths() []string {
	return e.ignorePaths
}

// RewriteSource applies every rule in order to src and returns the new
// content, the per-rule change counts, and the import declarations that
// were inserted. Imports are inserted in sorted order so output is stable
// across runs.
func (e *Engine) RewriteSource(src string) (string, []tt.Change, []string) {
	content := src
	var changes []tt.Change
	needed := make(map[string]bool)

	for _, rule := range e.rules {
		count := len(rule.Pattern.FindAllStringIndex(content, -1))
		if count == 0 {
			continue
		}
		content = rule.Pattern.ReplaceAllString(content, rule.Replacement)
		changes = append(changes, tt.Change{Description: rule.Description, Count: count})
		if rule.Import != "" {
			needed[rule.Import] = true
		}
	}

	imports := make([]string, 0, len(needed))
	for imp := range needed {
		imports = append(imports, imp)
	}
	sort.Strings(imports)

	var added []string
	for _, imp := range imports {
		if HasImport(content, imp) {
			continue
		}
		content = AddImport(content, imp)
		added = append(added, imp)
	}

	return content, changes, added
}

// RewriteFile reads path, rewrites its content, and writes it back unless
// the engine is in dry-run mode. A read failure yields a result with Err
// set and no changes; a write failure also sets Err but keeps the already
// computed change records, so the report still shows what was attempted.
// Errors never propagate: the batch loop always continues.
func (e *Engine) RewriteFile(path string) tt.FileResult {
	result := tt.FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	original := string(data)

	content, changes, added := e.RewriteSource(original)
	result.Changes = changes
	result.ImportsAdded = added

	if content == original {
		return result
	}
	result.Modified = true

	if e.dryRun {
		return result
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		result.Err = err.Error()
	}
	return result
}
