// Package rpnconfig loads the rpn.yaml file that configures a session
// before its startup scripts run: prompt text, the values pushed onto the
// stack automatically at boot, and which optional word groups (currently
// just the machine-driver stub) to wire in.
package rpnconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level shape of rpn.yaml.
type Config struct {
	// Prompt overrides the default "ok> " REPL prompt.
	Prompt string `yaml:"prompt,omitempty"`

	// Startup lists files fed through Interpreter.ParseFile, in order,
	// before the REPL takes over.
	Startup []string `yaml:"startup,omitempty"`

	// Machine, when true, registers the internal/machinestub word set
	// against a simulated CNC machine.
	Machine bool `yaml:"machine,omitempty"`

	// Push lists numeric literals to push onto the stack at boot, bottom
	// first — useful for scripts that expect fixed leading arguments.
	Push []float64 `yaml:"push,omitempty"`
}

// DefaultPrompt is used when a Config doesn't set one.
const DefaultPrompt = "ok> "

func (c *Config) setDefaults() {
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
}

// Load reads and parses path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses rpn.yaml content already in memory. path is used only in
// error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}
