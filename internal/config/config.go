package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPath overrides the config file location
const EnvPath = "REPODASH_CONFIG"

// AutoBranch asks for main-branch detection from the repository refs
const AutoBranch = "auto"

type Config struct {
	Repo     RepoConfig     `toml:"repo"`
	PR       PRConfig       `toml:"pr"`
	Scaffold ScaffoldConfig `toml:"scaffold"`
}

type RepoConfig struct {
	// Path is the default working copy; empty means the current directory
	Path string `toml:"path"`
	// MainBranch is the tracked main line, or "auto"
	MainBranch string `toml:"main_branch"`
	Remote     string `toml:"remote"`
	// RepositoryURL is used for pull request links; empty means the remote's URL
	RepositoryURL string `toml:"repository_url"`
}

type PRConfig struct {
	UseGH        bool   `toml:"use_gh"`
	BranchPrefix string `toml:"branch_prefix"`
}

type ScaffoldConfig struct {
	Folders []string `toml:"folders"`
}

func DefaultConfig() *Config {
	return &Config{
		Repo: RepoConfig{
			MainBranch: "main",
			Remote:     "origin",
		},
		PR: PRConfig{
			UseGH:        false,
			BranchPrefix: "feature/auto-",
		},
		Scaffold: ScaffoldConfig{
			Folders: []string{"app", "infra", "tests", "docs", ".github/workflows"},
		},
	}
}

// Path returns the config file location
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return expandTilde(p), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "repodash.toml"), nil
}

// Load reads the config file, writing defaults on a best-effort basis if it is missing
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, falling back to defaults if it does not exist
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.SaveTo(path) // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the workflows cannot run with
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Repo.MainBranch) == "" {
		errs = append(errs, errors.New("repo.main_branch must not be empty"))
	}
	if strings.TrimSpace(c.Repo.Remote) == "" {
		errs = append(errs, errors.New("repo.remote must not be empty"))
	}
	if strings.TrimSpace(c.PR.BranchPrefix) == "" {
		errs = append(errs, errors.New("pr.branch_prefix must not be empty"))
	}
	return errors.Join(errs...)
}

func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal returns the TOML form of the config
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// RepoPath returns the configured working copy with ~ expanded
func (c *Config) RepoPath() string {
	return expandTilde(c.Repo.Path)
}

// AutoDetectBranch returns true if the main branch should be read from the repository
func (c *Config) AutoDetectBranch() bool {
	return strings.EqualFold(c.Repo.MainBranch, AutoBranch)
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
