package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasImport(t *testing.T) {
	t.Parallel()
	decl := "use crate::utils::aliases::StrMap;"

	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "exact import",
			content:  "use crate::utils::aliases::StrMap;\nfn f() {}",
			expected: true,
		},
		{
			name:     "brace list import",
			content:  "use crate::utils::aliases::{JsonMap, StrMap};\nfn f() {}",
			expected: true,
		},
		{
			name:     "brace list with single symbol",
			content:  "use crate::utils::aliases::{StrMap};\nfn f() {}",
			expected: true,
		},
		{
			name:     "prelude wildcard",
			content:  "use crate::prelude::*;\nfn f() {}",
			expected: true,
		},
		{
			name:     "absent",
			content:  "use std::collections::HashMap;\nfn f() {}",
			expected: false,
		},
		{
			name:     "different symbol in brace list",
			content:  "use crate::utils::aliases::{JsonMap, Messages};\nfn f() {}",
			expected: false,
		},
		{
			// brace lists split across lines are out of scope: detection
			// stops at the first closing brace on a single line
			name:     "multi-line brace list is not detected",
			content:  "use crate::utils::aliases::{\n    StrMap,\n    JsonMap,\n};\nfn f() {}",
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, HasImport(tt.content, decl))
		})
	}
}

func TestAddImport(t *testing.T) {
	t.Parallel()
	decl := "use crate::utils::aliases::StrMap;"

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "after last use line",
			content:  "use foo::bar;\nuse foo::baz;\n\nfn f() {}",
			expected: "use foo::bar;\nuse foo::baz;\nuse crate::utils::aliases::StrMap;\n\nfn f() {}",
		},
		{
			name:     "no use lines, after leading comments",
			content:  "// module docs\n// more docs\nfn f() {}",
			expected: "// module docs\n// more docs\nuse crate::utils::aliases::StrMap;\n\nfn f() {}",
		},
		{
			name:     "no use lines, no comments",
			content:  "fn f() {}",
			expected: "use crate::utils::aliases::StrMap;\n\nfn f() {}",
		},
		{
			name:     "indented use inside module block still counts",
			content:  "mod m {\n    use foo::bar;\n}\n",
			expected: "mod m {\n    use foo::bar;\nuse crate::utils::aliases::StrMap;\n}\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, AddImport(tt.content, decl))
		})
	}
}

func TestAddImportThenHasImport(t *testing.T) {
	t.Parallel()
	decl := "use crate::utils::aliases::Messages;"
	content := "use foo::bar;\nfn f() {}"

	require.False(t, HasImport(content, decl))
	updated := AddImport(content, decl)
	assert.True(t, HasImport(updated, decl))
	assert.Equal(t, 1, strings.Count(updated, decl))
}
