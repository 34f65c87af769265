package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runelabs/realias/rewrite"
)

func TestInitConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".realias.yaml")

	require.NoError(t, initConfigurationFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config rewrite.Config
	require.NoError(t, yaml.Unmarshal(data, &config))

	assert.Equal(t, "realias", config.Name)
	assert.Len(t, config.Rules, 5)
	assert.Contains(t, config.Ignore, "src/lib.rs")

	// the written file must round-trip into a working engine
	engine, err := rewrite.New(path, true)
	require.NoError(t, err)
	assert.Len(t, engine.Rules(), 5)
}
