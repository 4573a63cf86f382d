package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/smartkeys"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	ReadOnly  bool
	Clipboard Clipboard

	// SmartKeys selects the pairing and wrapping behaviors. The zero value
	// enables the default sets.
	SmartKeys smartkeys.Options

	// Logger receives smart key diagnostics. Nil discards them.
	Logger *zap.Logger

	// OnChange fires after every update that changed text or selection.
	OnChange func(ChangeEvent)
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
