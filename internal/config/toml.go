// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typerace/internal/model"
)

const defaultLang = "en"

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Words WordsConfig `toml:"words"`
	Log   LogConfig   `toml:"log"`
}

// WordsConfig selects the race dictionary.
type WordsConfig struct {
	List *string `toml:"list"`
	Lang *string `toml:"lang"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return FileConfig{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Resolve fills defaults for unset values.
func (c FileConfig) Resolve() model.Config {
	cfg := model.Config{Lang: defaultLang, LogLevel: "info"}
	if c.Words.List != nil {
		cfg.WordListPath = expandHome(strings.TrimSpace(*c.Words.List))
	}
	if c.Words.Lang != nil && strings.TrimSpace(*c.Words.Lang) != "" {
		cfg.Lang = strings.ToLower(strings.TrimSpace(*c.Words.Lang))
	}
	if c.Log.File != nil {
		cfg.LogFile = expandHome(strings.TrimSpace(*c.Log.File))
	}
	if c.Log.Level != nil && strings.TrimSpace(*c.Log.Level) != "" {
		cfg.LogLevel = strings.TrimSpace(*c.Log.Level)
	}
	return cfg
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return home + path[1:]
}
