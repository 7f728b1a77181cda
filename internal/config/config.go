package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"sitesearch/internal/index"
	"sitesearch/internal/search"
)

// FileName is the per-site configuration file looked up in the working directory
const FileName = ".sitesearch.toml"

// Config represents the application configuration
type Config struct {
	Version     int                    `toml:"version"`
	Index       string                 `toml:"index"`    // index.json path or URL
	BaseURL     string                 `toml:"base_url"` // site root, used for relative index paths and links
	LogFile     string                 `toml:"log_file"`
	OpenCommand string                 `toml:"open_command"` // run with the result URL on enter, empty to only report it
	Search      SearchSettings         `toml:"search"`
	Sections    map[string]search.Icon `toml:"sections"` // section name -> icon override
	UISettings  UISettings             `toml:"ui"`
}

// SearchSettings tunes matching and the overlay transitions
type SearchSettings struct {
	Limit        int `toml:"limit"`
	SummaryLimit int `toml:"summary_limit"`
	FocusDelayMS int `toml:"focus_delay_ms"`
	CloseDelayMS int `toml:"close_delay_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowDates bool `toml:"show_dates"`
	StartOpen bool `toml:"start_open"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "sitesearch", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Index:   index.DefaultLocation,
		LogFile: "sitesearch.log",
		Search: SearchSettings{
			Limit:        search.DefaultLimit,
			SummaryLimit: search.DefaultSummaryLimit,
			FocusDelayMS: int(search.DefaultFocusDelay / time.Millisecond),
			CloseDelayMS: int(search.DefaultCloseDelay / time.Millisecond),
		},
		Sections: map[string]search.Icon{},
		UISettings: UISettings{
			ShowDates: true,
		},
	}
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Index == "" {
		c.Index = def.Index
	}
	if c.Search.Limit <= 0 {
		c.Search.Limit = def.Search.Limit
	}
	if c.Search.SummaryLimit <= 0 {
		c.Search.SummaryLimit = def.Search.SummaryLimit
	}
	if c.Search.FocusDelayMS <= 0 {
		c.Search.FocusDelayMS = def.Search.FocusDelayMS
	}
	if c.Search.CloseDelayMS <= 0 {
		c.Search.CloseDelayMS = def.Search.CloseDelayMS
	}
	if c.Sections == nil {
		c.Sections = map[string]search.Icon{}
	}
}

// FocusDelay returns the delay before the query input is focused
func (c *Config) FocusDelay() time.Duration {
	return time.Duration(c.Search.FocusDelayMS) * time.Millisecond
}

// CloseDelay returns the duration of the close transition
func (c *Config) CloseDelay() time.Duration {
	return time.Duration(c.Search.CloseDelayMS) * time.Millisecond
}

// Icons returns the section icons with the configured overrides applied
func (c *Config) Icons() search.IconSet {
	return search.DefaultIcons().With(c.Sections)
}

// IndexLocation resolves where the index is read from. A relative index is
// resolved against base_url when one is set.
func (c *Config) IndexLocation() string {
	loc := c.Index
	if loc == "" {
		loc = index.DefaultLocation
	}
	if isURL(loc) || c.BaseURL == "" || filepath.IsAbs(loc) {
		return loc
	}
	return joinURL(c.BaseURL, loc)
}

// LinkURL turns a result permalink into an address that can be opened
func (c *Config) LinkURL(permalink string) string {
	if isURL(permalink) || c.BaseURL == "" {
		return permalink
	}
	return joinURL(c.BaseURL, permalink)
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func joinURL(base, ref string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
