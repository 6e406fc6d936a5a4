package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "leaguenote"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "leaguenote"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: LEAGUENOTE_* (highest among these sources)
	v.SetEnvPrefix("leaguenote")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize a few dependent values post-merge
	if v.GetString("notes_dir") == "" {
		v.Set("notes_dir", defaultNotesDir())
	}
	if strings.TrimSpace(v.GetString("league")) == "" {
		v.Set("league", "Trading Agent League")
	}

	// Allow comma-separated env override for participants
	if len(v.GetStringSlice("participants")) == 0 {
		if s := strings.TrimSpace(v.GetString("participants")); s != "" {
			parts := strings.Split(s, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				t := strings.TrimSpace(p)
				if t != "" {
					out = append(out, t)
				}
			}
			if len(out) > 0 {
				v.Set("participants", out)
			}
		}
	}
	return nil
}

// defaultNotesDir resolves the default notes dir: $XDG_DATA_HOME/leaguenote
// or ~/.local/share/leaguenote
func defaultNotesDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "leaguenote")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "leaguenote")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "leaguenote", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// ResolveNotesDir returns the vault directory, expanding a leading ~.
func ResolveNotesDir(v *viper.Viper) string {
	dir := v.GetString("notes_dir")
	if dir == "" {
		dir = defaultNotesDir()
	}
	// Expand ~ for convenience
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return dir
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Core paths and conventions
		{Key: "notes_dir", Default: defaultNotesDir(), Comment: "Directory round notes are written to"},
		{Key: "league", Default: "Trading Agent League", Comment: "League name used when none is specified"},
		{Key: "round", Default: 1, Comment: "Round number used when none is specified"},
		{Key: "participants", Default: []string{"Alpha", "Beta", "Gamma"}, Comment: "Roster used when creating a round without explicit participants"},
		{Key: "output", Default: "plain", Comment: "Default output mode for rank: plain|pretty|json"},

		{Key: "render.style", Default: "dracula", Comment: "Glamour style for pretty output"},
		{Key: "render.width", Default: 0, Comment: "Word-wrap width for pretty output; 0 auto-detects the terminal"},
	}
}
