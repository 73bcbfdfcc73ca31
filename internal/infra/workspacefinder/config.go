package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skeeto/showerthoughts/internal/domain"
)

// LoadConfig loads showerthoughts.yaml from the workspace root and applies
// defaults for anything left unset.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "showerthoughts.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Defaults.K != nil {
		if *y.Defaults.K < 1 {
			return cfg, invalidField(path, "defaults.k", "must be >= 1")
		}
		cfg.Defaults.K = *y.Defaults.K
	}
	if y.Defaults.Strategy != "" {
		cfg.Defaults.Strategy = y.Defaults.Strategy
	}
	if y.Defaults.Width != nil {
		if *y.Defaults.Width < 1 {
			return cfg, invalidField(path, "defaults.width", "must be >= 1")
		}
		cfg.Defaults.Width = *y.Defaults.Width
	}

	if y.Fields.Score != "" {
		cfg.Fields.Score = y.Fields.Score
	}
	if y.Fields.Title != "" {
		cfg.Fields.Title = y.Fields.Title
	}
	if y.Fields.Author != "" {
		cfg.Fields.Author = y.Fields.Author
	}
	if y.Fields.Created != "" {
		cfg.Fields.Created = y.Fields.Created
	}

	if y.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Paths.RunsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Defaults struct {
		K        *int   `yaml:"k"`
		Strategy string `yaml:"strategy"`
		Width    *int   `yaml:"width"`
	} `yaml:"defaults"`

	Fields struct {
		Score   string `yaml:"score"`
		Title   string `yaml:"title"`
		Author  string `yaml:"author"`
		Created string `yaml:"created"`
	} `yaml:"fields"`

	Paths struct {
		RunsDir string `yaml:"runs_dir"`
	} `yaml:"paths"`
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
