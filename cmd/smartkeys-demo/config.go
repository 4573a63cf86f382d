package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/smartkeys"
)

// demoConfig is the on-disk configuration of the demo.
type demoConfig struct {
	Editor struct {
		LineNumbers bool `toml:"line_numbers"`
		TabWidth    int  `toml:"tab_width"`
	} `toml:"editor"`

	SmartKeys smartkeys.Options `toml:"smartkeys"`

	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
}

func defaultConfig() demoConfig {
	var cfg demoConfig
	cfg.Editor.LineNumbers = true
	cfg.Editor.TabWidth = 4
	cfg.Log.Level = "info"
	return cfg
}

// loadConfig layers the TOML file at path on top of the defaults. An empty
// path or a missing file yields the defaults.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return demoConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return demoConfig{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	// Fail early with the same check the editor applies.
	if _, err := smartkeys.Resolve(cfg.SmartKeys, smartkeys.Defaults()); err != nil {
		return demoConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

const sampleConfig = `# smartkeys-demo configuration

[editor]
line_numbers = true
tab_width = 4

[smartkeys]
fallback_mode = false
# Pick keys out of the default sets; [] disables the behavior.
# wrap = ["\"", "(", "["]
# pair = ["(", "["]

# Replace a set outright.
# [smartkeys.wrappable]
# "*" = { open = "*", close = "*" }
# "_" = { open = "_", close = "_" }

[log]
# file = "smartkeys-demo.log"
level = "info"
`
