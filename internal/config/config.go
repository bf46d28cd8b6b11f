// Package config loads the optional .litweave.yaml configuration, with
// environment files and variable expansion applied before parsing.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	werrors "git.home.luguber.info/inful/litweave/internal/errors"
)

// DefaultPath is where Load looks when the user gives no explicit path.
const DefaultPath = ".litweave.yaml"

// Config represents the application configuration.
type Config struct {
	// Title overrides the document title (the CLI flag wins over this).
	Title string `yaml:"title,omitempty"`
	// Language is the highlighter language identifier.
	Language string `yaml:"language,omitempty"`
	// Template is an optional custom page template path.
	Template string `yaml:"template,omitempty"`

	Markdown  CollaboratorConfig `yaml:"markdown,omitempty"`
	Highlight CollaboratorConfig `yaml:"highlight,omitempty"`

	Workspace WorkspaceConfig `yaml:"workspace,omitempty"`
}

// CollaboratorConfig selects an external command for a collaborator role.
// An empty command means the built-in in-process collaborator.
type CollaboratorConfig struct {
	Command []string `yaml:"command,omitempty"`
}

// External reports whether an external command is configured.
func (c CollaboratorConfig) External() bool {
	return len(c.Command) > 0
}

// WorkspaceConfig controls where the per-run scratch directory lives.
type WorkspaceConfig struct {
	BaseDir string `yaml:"base_dir,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Language: "sh"}
}

// Load reads configuration from the given path. A missing file at the
// default path falls back to defaults; a missing file at an explicitly
// chosen path is a config error.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	explicit := path != "" && path != DefaultPath
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return nil, werrors.ConfigNotFound(path)
		}
		return nil, werrors.ConfigInvalid("unreadable", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, werrors.ConfigInvalid("parse", err).WithContext("path", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Language) == "" {
		c.Language = "sh"
	}
	for role, collab := range map[string]CollaboratorConfig{
		"markdown":  c.Markdown,
		"highlight": c.Highlight,
	} {
		if collab.External() && strings.TrimSpace(collab.Command[0]) == "" {
			return werrors.ValidationFailed(role+".command", "first element must be the command name")
		}
	}
	return nil
}

// loadEnvFiles loads .env/.env.local if present. Existing process
// environment variables are not overwritten.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

const starterConfig = `# litweave configuration
#
# title: My Script
# language: sh
# template: ./page.tmpl
#
# External collaborators (optional; built-in renderers are used otherwise):
# markdown:
#   command: ["markdown"]
# highlight:
#   command: ["pygmentize", "-f", "html", "-l"]
#
# workspace:
#   base_dir: /tmp
language: sh
`

// Init creates a new configuration file with example content.
func Init(path string, force bool) error {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil && !force {
		return werrors.New(werrors.CategoryConfig, werrors.SeverityFatal, "configuration file already exists").
			WithContext("path", path).
			WithContext("hint", "use --force to overwrite")
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return werrors.ConfigInvalid("write", err).WithContext("path", path)
	}
	return nil
}
