// Package config handles workspace discovery and configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Workspace layout constants.
const (
	WorkspaceDir  = ".comention"
	ConfigFile    = "config.yml"
	RecordsFile   = "records.jsonl"
	CountriesFile = "countries.csv"
	CacheDir      = "cache"
	DBFile        = "corpus.db"
)

// Config is the workspace configuration stored in .comention/config.yml.
// Zero fields fall back to defaults at load time, so a hand-trimmed
// config stays valid.
type Config struct {
	CountriesURL string       `yaml:"countries_url,omitempty"`
	Fields       FieldsConfig `yaml:"fields,omitempty"`
	Plot         PlotConfig   `yaml:"plot,omitempty"`
}

// FieldsConfig names the corpus fields used at import time.
type FieldsConfig struct {
	List    string `yaml:"list,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// PlotConfig holds chart rendering defaults.
type PlotConfig struct {
	TopN       int     `yaml:"top_n,omitempty"`
	TopEdges   int     `yaml:"top_edges,omitempty"`
	Width      float64 `yaml:"width,omitempty"`  // inches
	Height     float64 `yaml:"height,omitempty"` // inches
	LayoutK    float64 `yaml:"layout_k,omitempty"`
	LayoutSeed uint64  `yaml:"layout_seed,omitempty"`
}

// Default returns a fully populated configuration.
func Default() *Config {
	return &Config{
		Fields: FieldsConfig{
			List:    "countries_mentioned_list",
			Subject: "subjareas",
		},
		Plot: PlotConfig{
			TopN:       20,
			TopEdges:   100,
			Width:      10,
			Height:     4,
			LayoutK:    0.2,
			LayoutSeed: 42,
		},
	}
}

// WorkspacePath returns the path to the .comention directory from a root.
func WorkspacePath(root string) string {
	return filepath.Join(root, WorkspaceDir)
}

// ConfigPath returns the path to config.yml from a root.
func ConfigPath(root string) string {
	return filepath.Join(root, WorkspaceDir, ConfigFile)
}

// RecordsPath returns the path to the canonical records JSONL from a root.
func RecordsPath(root string) string {
	return filepath.Join(root, WorkspaceDir, RecordsFile)
}

// CountriesPath returns the path to the cached reference table from a root.
func CountriesPath(root string) string {
	return filepath.Join(root, WorkspaceDir, CountriesFile)
}

// CachePath returns the path to the cache directory from a root.
func CachePath(root string) string {
	return filepath.Join(root, WorkspaceDir, CacheDir)
}

// DBPath returns the path to the corpus cache database from a root.
func DBPath(root string) string {
	return filepath.Join(root, WorkspaceDir, CacheDir, DBFile)
}

// IsWorkspace checks whether the given path contains a comention workspace.
func IsWorkspace(root string) bool {
	info, err := os.Stat(WorkspacePath(root))
	return err == nil && info.IsDir()
}

// FindWorkspace walks up from the given path to find a workspace.
// Returns the workspace root path or an error if not found.
func FindWorkspace(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsWorkspace(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a comention workspace (no %s directory found; run 'comention init')", WorkspaceDir)
		}
		abs = parent
	}
}

// Init creates the workspace directory structure and writes the default
// configuration. Fails if a workspace already exists at root.
func Init(root string) (*Config, error) {
	if IsWorkspace(root) {
		return nil, fmt.Errorf("workspace already exists at %s", WorkspacePath(root))
	}

	if err := os.MkdirAll(CachePath(root), 0755); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	cfg := Default()
	if err := cfg.Save(root); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration from the workspace at root, filling unset
// fields from Default.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes configuration to the workspace at root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Fields.List == "" {
		c.Fields.List = def.Fields.List
	}
	if c.Fields.Subject == "" {
		c.Fields.Subject = def.Fields.Subject
	}
	if c.Plot.TopN == 0 {
		c.Plot.TopN = def.Plot.TopN
	}
	if c.Plot.TopEdges == 0 {
		c.Plot.TopEdges = def.Plot.TopEdges
	}
	if c.Plot.Width == 0 {
		c.Plot.Width = def.Plot.Width
	}
	if c.Plot.Height == 0 {
		c.Plot.Height = def.Plot.Height
	}
	if c.Plot.LayoutK == 0 {
		c.Plot.LayoutK = def.Plot.LayoutK
	}
	if c.Plot.LayoutSeed == 0 {
		c.Plot.LayoutSeed = def.Plot.LayoutSeed
	}
}
