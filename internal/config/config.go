// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/interactive-cv/internal/commands"
	"github.com/jeranaias/interactive-cv/internal/portfolio"
	"github.com/jeranaias/interactive-cv/internal/terminal"
	"github.com/jeranaias/interactive-cv/internal/ui/styles"
	"github.com/jeranaias/interactive-cv/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete configuration of the terminal.
type Config struct {
	// Terminal window settings
	Terminal TerminalConfig `toml:"terminal" json:"terminal" yaml:"terminal"`

	// Profile feeds whoami, skills and contact
	Profile portfolio.Profile `toml:"profile" json:"profile" yaml:"profile"`

	// Projects feeds the projects command
	Projects []portfolio.Project `toml:"projects" json:"projects" yaml:"projects"`

	// Commands are static custom commands, in table order
	Commands []CommandConfig `toml:"commands" json:"commands" yaml:"commands"`

	// Themes are custom color themes keyed by name
	Themes map[string]styles.Palette `toml:"themes" json:"themes" yaml:"themes"`
}

// TerminalConfig holds the window settings.
type TerminalConfig struct {
	WelcomeMessage string `toml:"welcome_message" json:"welcome_message" yaml:"welcome_message"`
	Prompt         string `toml:"prompt" json:"prompt" yaml:"prompt"`
	Title          string `toml:"title" json:"title" yaml:"title"`
	Width          int    `toml:"width" json:"width" yaml:"width"`
	Height         int    `toml:"height" json:"height" yaml:"height"`
	DefaultTheme   string `toml:"default_theme" json:"default_theme" yaml:"default_theme"`
}

// CommandConfig is a custom command with a static output.
type CommandConfig struct {
	Name        string `toml:"name" json:"name" yaml:"name"`
	Description string `toml:"description" json:"description" yaml:"description"`
	Output      string `toml:"output" json:"output" yaml:"output"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a configuration with the built-in defaults and no
// profile data.
func Default() *Config {
	return &Config{
		Terminal: TerminalConfig{
			WelcomeMessage: terminal.DefaultWelcome,
			Prompt:         terminal.DefaultPrompt,
			Title:          terminal.DefaultTitle,
			Width:          terminal.DefaultWidth,
			Height:         terminal.DefaultHeight,
			DefaultTheme:   styles.MochaName,
		},
	}
}

// Sample returns the configuration written by "interactive-cv init".
func Sample() *Config {
	cfg := Default()
	cfg.Profile = portfolio.Profile{
		Name:     "Rene Beispiel",
		Role:     "Softwareentwickler",
		Location: "Berlin",
		Summary:  "Ich baue Werkzeuge für das Terminal.",
		Email:    "rene@example.com",
		Skills: []portfolio.SkillGroup{
			{Category: "Sprachen", Items: []string{"Go", "TypeScript", "SQL"}},
			{Category: "Tools", Items: []string{"Docker", "Kubernetes", "Git"}},
		},
		Links: []portfolio.Link{
			{Label: "GitHub", URL: "https://github.com/example"},
		},
	}
	cfg.Projects = []portfolio.Project{
		{
			Name:         "interactive-cv",
			Description:  "Ein **Fake-Terminal**, das meinen Lebenslauf präsentiert.",
			Technologies: []string{"Go", "Bubble Tea"},
			GithubURL:    "https://github.com/example/interactive-cv",
		},
	}
	cfg.Commands = []CommandConfig{
		{Name: "hobbies", Description: "Was ich in meiner Freizeit mache", Output: "Klettern, Kochen, Lesen"},
	}
	cfg.Themes = map[string]styles.Palette{
		"ocean": {Dark: true, Accent: "#5fafff", Prompt: "#5fd7af"},
	}
	return cfg
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// Extensions lists the supported config formats in search order.
var Extensions = []string{".toml", ".json", ".yaml"}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".interactive-cv"), nil
}

// ConfigPath returns the path of the config file with extension ext.
func ConfigPath(ext string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config"+ext), nil
}

// Find returns the first existing config file in search order.
func Find() (string, bool) {
	for _, ext := range Extensions {
		path, err := ConfigPath(ext)
		if err != nil {
			return "", false
		}
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the first config file found in the config directory, or the
// defaults if there is none. Environment overrides are applied last.
func Load() (*Config, error) {
	if path, ok := Find(); ok {
		return LoadFromPath(path)
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads the file at path, choosing the format by extension
// (TOML when unknown), then applies defaults, env overrides and validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = LoadJSON(cfg, path)
	case ".yaml", ".yml":
		err = LoadYAML(cfg, path)
	default:
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON decodes a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadYAML decodes a YAML file into cfg.
func LoadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML file: %w", err)
	}
	return fillDefaults(cfg)
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Terminal.WelcomeMessage == "" {
		cfg.Terminal.WelcomeMessage = defaults.Terminal.WelcomeMessage
	}
	if cfg.Terminal.Prompt == "" {
		cfg.Terminal.Prompt = defaults.Terminal.Prompt
	}
	if cfg.Terminal.Title == "" {
		cfg.Terminal.Title = defaults.Terminal.Title
	}
	if cfg.Terminal.Width == 0 {
		cfg.Terminal.Width = defaults.Terminal.Width
	}
	if cfg.Terminal.Height == 0 {
		cfg.Terminal.Height = defaults.Terminal.Height
	}
	if cfg.Terminal.DefaultTheme == "" {
		cfg.Terminal.DefaultTheme = defaults.Terminal.DefaultTheme
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes cfg to path as TOML. The write is atomic.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# interactive-cv configuration\n")
	buf.WriteString("# Project descriptions are Markdown.\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns all problems at once as
// ValidateErrors. Custom commands named help or clear are not an error;
// the command table drops them with a warning. Neither is an unknown
// default theme, the terminal falls back to mocha.
func (c *Config) Validate() error {
	var errs ValidateErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// Terminal
	if c.Terminal.Width < 0 || (c.Terminal.Width > 0 && c.Terminal.Width < 20) {
		add("terminal.width", "must be at least 20, got %d", c.Terminal.Width)
	}
	if c.Terminal.Height < 0 || (c.Terminal.Height > 0 && c.Terminal.Height < 5) {
		add("terminal.height", "must be at least 5, got %d", c.Terminal.Height)
	}
	if strings.ContainsAny(c.Terminal.Prompt, "\r\n") {
		add("terminal.prompt", "must be a single line")
	}

	// Themes
	for _, name := range sortedKeys(c.Themes) {
		if !validName(name) {
			add("themes."+name, "invalid theme name")
		}
		for _, tok := range c.Themes[name].Tokens() {
			if err := styles.ValidateColor(tok.Value); err != nil {
				add("themes."+name+"."+tok.Name, "%v", err)
			}
		}
	}

	// Commands
	seen := make(map[string]bool, len(c.Commands))
	for i, cmd := range c.Commands {
		field := fmt.Sprintf("commands[%d]", i)
		if !validName(cmd.Name) {
			add(field+".name", "invalid command name '%s'", cmd.Name)
			continue
		}
		key := commands.Key(cmd.Name)
		if seen[key] {
			add(field+".name", "duplicate command '%s'", cmd.Name)
		}
		seen[key] = true
	}

	// Projects
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Name) == "" {
			add(fmt.Sprintf("projects[%d].name", i), "must not be empty")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validName reports whether name is a single non-empty word.
func validName(name string) bool {
	return name != "" && strings.IndexFunc(name, unicode.IsSpace) < 0
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - ICV_PROMPT: overrides terminal.prompt
//   - ICV_THEME: overrides terminal.default_theme
//   - ICV_WELCOME: overrides terminal.welcome_message
//   - ICV_TITLE: overrides terminal.title
func (c *Config) ApplyEnvOverrides() {
	if prompt := os.Getenv("ICV_PROMPT"); prompt != "" {
		c.Terminal.Prompt = prompt
	}
	if theme := os.Getenv("ICV_THEME"); theme != "" {
		c.Terminal.DefaultTheme = theme
	}
	if welcome := os.Getenv("ICV_WELCOME"); welcome != "" {
		c.Terminal.WelcomeMessage = welcome
	}
	if title := os.Getenv("ICV_TITLE"); title != "" {
		c.Terminal.Title = title
	}
}

// =============================================================================
// TERMINAL OPTIONS
// =============================================================================

// CustomCommands converts the static custom commands, in order.
func (c *Config) CustomCommands() []commands.Command {
	cmds := make([]commands.Command, 0, len(c.Commands))
	for _, cc := range c.Commands {
		cmds = append(cmds, commands.Command{
			Name:        cc.Name,
			Description: cc.Description,
			Output:      commands.Literal(cc.Output),
		})
	}
	return cmds
}

// CustomThemes returns the custom themes sorted by name.
func (c *Config) CustomThemes() []styles.Named {
	themes := make([]styles.Named, 0, len(c.Themes))
	for _, name := range sortedKeys(c.Themes) {
		themes = append(themes, styles.Named{Name: name, Palette: c.Themes[name]})
	}
	return themes
}

// TerminalOptions returns the terminal options described by c. The caller
// sets the mount point and logger.
func (c *Config) TerminalOptions() terminal.Options {
	return terminal.Options{
		CustomCommands: c.CustomCommands(),
		WelcomeMessage: c.Terminal.WelcomeMessage,
		Prompt:         c.Terminal.Prompt,
		Title:          c.Terminal.Title,
		Width:          c.Terminal.Width,
		Height:         c.Terminal.Height,
		Profile:        c.Profile,
		Projects:       c.Projects,
		CustomThemes:   c.CustomThemes(),
		DefaultTheme:   c.Terminal.DefaultTheme,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
