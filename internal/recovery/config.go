package recovery

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the companion updater this tool can repair: where its
// script lives, which version string marks it as stale, and the git tree it
// manages.
type Config struct {
	ScriptPath   string `yaml:"script_path"`
	StaleVersion string `yaml:"stale_version"`
	RepoDir      string `yaml:"repo_dir"`
	Remote       string `yaml:"remote"`
	Branch       string `yaml:"branch"`
}

// LoadConfig reads and validates a YAML config file, applying defaults for
// the git remote and branch.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.ScriptPath == "" {
		return Config{}, fmt.Errorf("script_path is required")
	}
	if cfg.StaleVersion == "" {
		return Config{}, fmt.Errorf("stale_version is required")
	}
	if cfg.RepoDir == "" {
		return Config{}, fmt.Errorf("repo_dir is required")
	}
	if cfg.Remote == "" {
		cfg.Remote = "origin"
	}
	if cfg.Branch == "" {
		cfg.Branch = "master"
	}

	return cfg, nil
}
