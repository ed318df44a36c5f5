// Package mathconfig reads an optional TOML configuration file consumed by
// cmd/gomath: which font file to use by default, at what size, and whether
// to ask the renderer for debug bounding boxes.
package mathconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk shape of a gomath.toml file. All fields are
// optional; Default fills in the values a bare CLI invocation needs.
type Config struct {
	FontPath  string  `toml:"font_path"`
	FontSize  float64 `toml:"font_size"`
	Debug     bool    `toml:"debug"`
}

// Default returns the configuration used when no gomath.toml is present or
// a file omits a field.
func Default() Config {
	return Config{
		FontPath: "",
		FontSize: 12.0,
		Debug:    false,
	}
}

// Load reads and parses path, starting from Default and overriding with
// whatever fields the file sets. A missing font_path is left empty; the
// caller (cmd/gomath) is responsible for requiring one explicitly via a
// flag when the config doesn't supply it.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadBytes parses TOML data directly, for tests and callers that already
// have the file contents in memory.
func LoadBytes(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
