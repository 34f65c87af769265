package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/runelabs/realias/internal/types"
)

func TestCompileRules(t *testing.T) {
	t.Parallel()

	configs := []tt.RuleConfig{
		{
			Description: "BTreeMap<String, String> → StrTree",
			Pattern:     `\bBTreeMap<String,\s*String>`,
			Replacement: "StrTree",
			Import:      "use crate::utils::aliases::StrTree;",
		},
	}

	rules, err := CompileRules(configs)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.True(t, rules[0].Pattern.MatchString("BTreeMap<String, String>"))
	assert.Equal(t, "StrTree", rules[0].Replacement)
}

func TestCompileRulesInvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := CompileRules([]tt.RuleConfig{
		{Description: "broken", Pattern: `[unclosed`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

// No rule's replacement may match any rule's pattern, otherwise a second
// run would rewrite already rewritten code and idempotence breaks.
func TestDefaultRulesDoNotCascade(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	require.NotEmpty(t, rules)
	for _, outer := range rules {
		for _, inner := range rules {
			assert.False(t, inner.Pattern.MatchString(outer.Replacement),
				"replacement %q must not match pattern %q", outer.Replacement, inner.Pattern)
		}
	}
}
