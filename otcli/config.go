package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
)

// cliConfig holds the settings of the CLI. Values come from defaults, then
// from an optional TOML file, then from command line flags.
type cliConfig struct {
	TraceLevel string // Debug, Info or Error
	Font       string // path of a font file or name of a Go font
	PreviewLen int    // number of bytes shown in table hex previews
}

func defaultConfig() cliConfig {
	return cliConfig{
		TraceLevel: "Info",
		Font:       "goregular",
		PreviewLen: 64,
	}
}

type fileConfig struct {
	Trace   string `toml:"trace"`
	Font    string `toml:"font"`
	Preview int    `toml:"preview"`
}

// loadConfig overlays cfg with the settings of the TOML file at path.
//
//	trace   = "Debug"
//	font    = "/Library/Fonts/Calibri.ttf"
//	preview = 128
func loadConfig(path string, cfg cliConfig) (cliConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cfg, fmt.Errorf("load otcli config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		tracer().Infof("config %s: ignoring unknown keys %v", path, undecoded)
	}
	if meta.IsDefined("trace") {
		level := strings.TrimSpace(raw.Trace)
		if err := checkTraceLevel(level); err != nil {
			return cfg, err
		}
		cfg.TraceLevel = level
	}
	if meta.IsDefined("font") {
		if font := strings.TrimSpace(raw.Font); font != "" {
			cfg.Font = font
		}
	}
	if meta.IsDefined("preview") {
		if raw.Preview < 0 {
			return cfg, fmt.Errorf("parse preview: must not be negative, is %d", raw.Preview)
		}
		cfg.PreviewLen = raw.Preview
	}
	return cfg, nil
}

func checkTraceLevel(level string) error {
	switch level {
	case "Debug", "Info", "Error":
		return nil
	}
	return fmt.Errorf("invalid trace level: %s", level)
}

// setTraceLevel sets the level of the CLI's tracer.
func setTraceLevel(level string) error {
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return checkTraceLevel(level)
	}
	return nil
}
