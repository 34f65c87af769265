package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	tt "github.com/runelabs/realias/internal/types"
)

const reportWidth = 60

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	modeStyle   = color.New(color.FgGreen, color.Bold)
	ruleStyle   = color.New(color.FgYellow, color.Bold)
	fileStyle   = color.New(color.FgCyan, color.Bold)
	countStyle  = color.New(color.FgHiBlue, color.Bold)
	errorStyle  = color.New(color.FgRed, color.Bold)
)

// GenerateReport renders the batch results: aggregate counts, a per-rule
// breakdown, details for every modified file, and a trailing list of files
// that carry an error. It is a pure projection over the results.
func GenerateReport(results []tt.FileResult, dryRun bool) string {
	var builder strings.Builder
	bar := strings.Repeat("=", reportWidth)

	builder.WriteString(bar + "\n")
	builder.WriteString(headerStyle.Sprint(" rewrite report") + "\n")
	builder.WriteString(bar + "\n")
	if dryRun {
		builder.WriteString(modeStyle.Sprint(" dry-run: no files were modified") + "\n")
	} else {
		builder.WriteString(modeStyle.Sprint(" changes applied") + "\n")
	}

	modified := 0
	totalChanges := 0
	ruleTotals := make(map[string]int)
	for _, result := range results {
		if result.Modified {
			modified++
		}
		for _, change := range result.Changes {
			totalChanges += change.Count
			ruleTotals[change.Description] += change.Count
		}
	}

	builder.WriteString(fmt.Sprintf("\n files scanned:      %d\n", len(results)))
	builder.WriteString(fmt.Sprintf(" files modified:     %d\n", modified))
	builder.WriteString(fmt.Sprintf(" total replacements: %d\n", totalChanges))

	if len(ruleTotals) > 0 {
		builder.WriteString("\n replacements by rule:\n")
		descriptions := make([]string, 0, len(ruleTotals))
		for description := range ruleTotals {
			descriptions = append(descriptions, description)
		}
		sort.Strings(descriptions)
		for _, description := range descriptions {
			builder.WriteString(fmt.Sprintf("   %s: %s\n",
				ruleStyle.Sprint(description),
				countStyle.Sprintf("%d occurrence(s)", ruleTotals[description])))
		}
	}

	if modified > 0 {
		builder.WriteString("\n modified files:\n")
		for _, result := range results {
			if !result.Modified {
				continue
			}
			builder.WriteString(fmt.Sprintf("\n   %s\n", fileStyle.Sprint(result.Path)))
			builder.WriteString(fmt.Sprintf("     %s\n",
				countStyle.Sprintf("%d replacement(s), %d import(s) added",
					result.TotalChanges(), len(result.ImportsAdded))))
			for _, change := range result.Changes {
				builder.WriteString(fmt.Sprintf("     %s: %d\n",
					ruleStyle.Sprint(change.Description), change.Count))
			}
			for _, imp := range result.ImportsAdded {
				builder.WriteString(fmt.Sprintf("     + %s\n", imp))
			}
		}
	}

	var failed []tt.FileResult
	for _, result := range results {
		if result.Err != "" {
			failed = append(failed, result)
		}
	}
	if len(failed) > 0 {
		builder.WriteString("\n" + errorStyle.Sprint(" errors:") + "\n")
		for _, result := range failed {
			builder.WriteString(fmt.Sprintf("   %s: %s\n",
				fileStyle.Sprint(result.Path), errorStyle.Sprint(result.Err)))
		}
	}

	builder.WriteString("\n" + bar + "\n")
	if dryRun {
		builder.WriteString(" re-run without --dry-run to apply these changes\n")
	}
	return builder.String()
}
