package internal

import (
	"fmt"
	"regexp"

	tt "github.com/runelabs/realias/internal/types"
)

// Rule is one rewrite applied uniformly across the corpus: every match of
// Pattern is replaced with Replacement, and Import names the declaration
// that must be in scope for the replacement to compile.
type Rule struct {
	Description string
	Pattern     *regexp.Regexp
	Replacement string
	Import      string
}

// DefaultRules returns the built-in alias table, used when no configuration
// file is present. Order matters: rules are applied in this order, and no
// replacement text may itself match another rule's pattern, otherwise a
// second run would rewrite the output again.
func DefaultRules() []Rule {
	return []Rule{
		{
			Description: "HashMap<String, String> → StrMap",
			Pattern:     regexp.MustCompile(`\bHashMap<String,\s*String>`),
			Replacement: "StrMap",
			Import:      "use crate::utils::aliases::StrMap;",
		},
		{
			Description: "HashMap<String, Vec<String>> → StrVecMap",
			Pattern:     regexp.MustCompile(`\bHashMap<String,\s*Vec<String>>`),
			Replacement: "StrVecMap",
			Import:      "use crate::utils::aliases::StrVecMap;",
		},
		{
			Description: "HashMap<String, Value> → JsonMap",
			Pattern:     regexp.MustCompile(`\bHashMap<String,\s*Value>`),
			Replacement: "JsonMap",
			Import:      "use crate::utils::aliases::JsonMap;",
		},
		{
			Description: "IndexMap<String, Box<dyn FormField>> → FieldsMap",
			Pattern:     regexp.MustCompile(`\bIndexMap<String,\s*Box<dyn\s+FormField>>`),
			Replacement: "FieldsMap",
			Import:      "use crate::utils::aliases::FieldsMap;",
		},
		{
			Description: "Vec<FlashMessage> → Messages",
			Pattern:     regexp.MustCompile(`\bVec<FlashMessage>`),
			Replacement: "Messages",
			Import:      "use crate::utils::aliases::Messages;",
		},
	}
}

// CompileRules turns configured rule definitions into executable rules.
// An invalid pattern is a configuration error and aborts startup rather
// than being skipped silently.
func CompileRules(configs []tt.RuleConfig) ([]Rule, error) {
	rules := make([]Rule, 0, len(configs))
	for _, rc := range configs {
		re, err := regexp.Compile(rc.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", rc.Pattern, err)
		}
		rules = append(rules, Rule{
			Description: rc.Description,
			Pattern:     re,
			Replacement: rc.Replacement,
			Import:      rc.Import,
		})
	}
	return rules, nil
}
