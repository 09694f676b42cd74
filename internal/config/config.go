package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `json:"-"`
	TestRoot    string `json:"test_root,omitempty"`

	// Optional input tables; built-in tables are used when empty
	SpecFile  string `json:"spec_file,omitempty"`
	RulesFile string `json:"rules_file,omitempty"`

	// Patcher file selection
	Extensions []string `json:"extensions,omitempty"`
	Marker     string   `json:"marker,omitempty"`

	// Report storage
	ReportDir string `json:"report_dir,omitempty"`

	// Paths to ignore when scanning
	PathsToIgnore []string `json:"ignore,omitempty"`

	// Command flags
	Flags Flags `json:"-"`
}

// Flags holds command-line flags
type Flags struct {
	TestRoot        string
	SpecFile        string
	RulesFile       string
	NameFilter      string
	RepairFile      string
	OldFile         string
	NewFile         string
	Tool            string
	DryRun          bool
	Quiet           bool
	Verbose         bool
	AllowBehavioral bool
	TestCases       bool
	Interactive     bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		TestRoot:    DefaultTestRoot,
		Marker:      DefaultMarker,
		ReportDir:   DefaultReportDir,
	}
	cfg.Extensions = append([]string(nil), DefaultExtensions...)
	cfg.PathsToIgnore = append([]string(nil), DefaultPathsToIgnore...)
	return cfg
}

// Load builds the config from defaults, the project config file, the
// environment (including .env) and finally flags
func Load(flags Flags) (*Config, error) {
	cfg := New()

	if err := cfg.loadFile(filepath.Join(cfg.ProjectPath, DefaultConfigFile)); err != nil {
		return nil, err
	}

	// A missing .env is fine; real environment variables still apply
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, DefaultEnvFile))
	cfg.applyEnv()

	cfg.Flags = flags
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return c.parse(data, path)
}

// parse overlays a JSONC document onto c. Fields absent from the document keep
// their current values.
func (c *Config) parse(data []byte, path string) error {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	var overlay Config
	if err := json.Unmarshal(standardized, &overlay); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	if overlay.TestRoot != "" {
		c.TestRoot = overlay.TestRoot
	}
	if overlay.SpecFile != "" {
		c.SpecFile = overlay.SpecFile
	}
	if overlay.RulesFile != "" {
		c.RulesFile = overlay.RulesFile
	}
	if len(overlay.Extensions) > 0 {
		c.Extensions = overlay.Extensions
	}
	if overlay.Marker != "" {
		c.Marker = overlay.Marker
	}
	if overlay.ReportDir != "" {
		c.ReportDir = overlay.ReportDir
	}
	if len(overlay.PathsToIgnore) > 0 {
		c.PathsToIgnore = overlay.PathsToIgnore
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPrefix + "TEST_ROOT"); v != "" {
		c.TestRoot = v
	}
	if v := os.Getenv(EnvPrefix + "SPEC_FILE"); v != "" {
		c.SpecFile = v
	}
	if v := os.Getenv(EnvPrefix + "RULES_FILE"); v != "" {
		c.RulesFile = v
	}
	if v := os.Getenv(EnvPrefix + "MARKER"); v != "" {
		c.Marker = v
	}
	if v := os.Getenv(EnvPrefix + "EXTENSIONS"); v != "" {
		var exts []string
		for _, e := range strings.Split(v, ",") {
			if e = strings.TrimSpace(e); e != "" {
				exts = append(exts, e)
			}
		}
		if len(exts) > 0 {
			c.Extensions = exts
		}
	}
}

// GetTestRoot returns the test tree root, using the flag if provided
func (c *Config) GetTestRoot() string {
	return c.resolve(c.Flags.TestRoot, c.TestRoot)
}

// GetSpecFile returns the spec file path, or "" for the built-in table
func (c *Config) GetSpecFile() string {
	return c.resolve(c.Flags.SpecFile, c.SpecFile)
}

// GetRulesFile returns the rules file path, or "" for the built-in rules
func (c *Config) GetRulesFile() string {
	return c.resolve(c.Flags.RulesFile, c.RulesFile)
}

// GetReportPath returns the absolute path of the stored report for a tool
func (c *Config) GetReportPath(tool string) string {
	p := filepath.Join(c.ProjectPath, c.ReportDir, tool+"-report.json")
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// resolve prefers the flag value over the configured one and anchors relative
// paths at the project path. Empty stays empty.
func (c *Config) resolve(flag, configured string) string {
	p := configured
	if flag != "" {
		p = flag
	}
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectPath, p)
}
