package rpnconfig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`startup: ["boot.4nc"]`), "rpn.yaml")
	require.NoError(t, err)
	require.Equal(t, DefaultPrompt, cfg.Prompt)
	require.Equal(t, []string{"boot.4nc"}, cfg.Startup)
	require.False(t, cfg.Machine)
}

func TestParseFull(t *testing.T) {
	data := []byte(`
prompt: "rpn> "
machine: true
push: [1, 2.5]
startup:
  - init.4nc
  - keypad.4nc
`)
	cfg, err := Parse(data, "rpn.yaml")
	require.NoError(t, err)
	require.Equal(t, "rpn> ", cfg.Prompt)
	require.True(t, cfg.Machine)
	require.Equal(t, []float64{1, 2.5}, cfg.Push)
	require.Equal(t, []string{"init.4nc", "keypad.4nc"}, cfg.Startup)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("prompt: [unterminated"), "rpn.yaml")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/rpn.yaml")
	require.Error(t, err)
}
