/*
Package config manages TOML config for fussy services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jimeh/fussy/internal/utils"
	"github.com/jimeh/fussy/pkg/fussy"
	"github.com/jimeh/fussy/pkg/highlight"
)

// Config holds the entire config structure
type Config struct {
	Match     MatchConfig     `toml:"match"`
	Highlight HighlightConfig `toml:"highlight"`
	Server    ServerConfig    `toml:"server"`
}

// MatchConfig holds the ranking pipeline limits.
type MatchConfig struct {
	MaxQueryLength    int  `toml:"max_query_length"`
	MaxCandidateLimit int  `toml:"max_candidate_limit"`
	IgnoreCase        bool `toml:"ignore_case"`
	MaxWordLength     int  `toml:"max_word_length"`
}

// HighlightConfig holds emphasis options.
type HighlightConfig struct {
	Enabled    bool   `toml:"enabled"`
	MatchColor string `toml:"match_color"`
	TailColor  string `toml:"tail_color"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
	MinQuery int `toml:"min_query"`
	MaxQuery int `toml:"max_query"`
}

// Styles converts the highlight section into lipgloss emphasis styles.
func (h HighlightConfig) Styles() highlight.Styles {
	styles := highlight.DefaultStyles()
	if h.MatchColor != "" {
		styles.Match = styles.Match.Foreground(lipgloss.Color(h.MatchColor))
	}
	if h.TailColor != "" {
		styles.Tail = styles.Tail.Foreground(lipgloss.Color(h.TailColor))
	}
	return styles
}

// Options converts the match section into pipeline options.
func (m MatchConfig) Options() fussy.Options {
	return fussy.Options{
		MaxQueryLength:    m.MaxQueryLength,
		MaxCandidateLimit: m.MaxCandidateLimit,
		IgnoreCase:        m.IgnoreCase,
		MaxWordLength:     m.MaxWordLength,
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "fussy")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "fussy")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/fussy/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Match: MatchConfig{
			MaxQueryLength:    128,
			MaxCandidateLimit: 1000,
			IgnoreCase:        true,
			MaxWordLength:     1000,
		},
		Highlight: HighlightConfig{
			Enabled:    true,
			MatchColor: "#e0def4",
			TailColor:  "#908caa",
		},
		Server: ServerConfig{
			MaxLimit: 64,
			MinQuery: 1,
			MaxQuery: 60,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse parses a TOML file section by section so a single
// malformed value does not throw away the whole file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if matchSection, ok := utils.ExtractSection(tempConfig, "match"); ok {
		extractMatchConfig(matchSection, &config.Match)
	}
	if hlSection, ok := utils.ExtractSection(tempConfig, "highlight"); ok {
		extractHighlightConfig(hlSection, &config.Highlight)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

// extractMatchConfig extracts match configuration from a map
func extractMatchConfig(data map[string]any, match *MatchConfig) {
	if val, ok := utils.ExtractInt64(data, "max_query_length"); ok {
		match.MaxQueryLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_candidate_limit"); ok {
		match.MaxCandidateLimit = val
	}
	if val, ok := utils.ExtractBool(data, "ignore_case"); ok {
		match.IgnoreCase = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_length"); ok {
		match.MaxWordLength = val
	}
}

// extractHighlightConfig extracts highlight configuration from a map
func extractHighlightConfig(data map[string]any, hl *HighlightConfig) {
	if val, ok := utils.ExtractBool(data, "enabled"); ok {
		hl.Enabled = val
	}
	if val, ok := data["match_color"].(string); ok {
		hl.MatchColor = val
	}
	if val, ok := data["tail_color"].(string); ok {
		hl.TailColor = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_query"); ok {
		server.MinQuery = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query"); ok {
		server.MaxQuery = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
