package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Questions Questions `yaml:"questions"`
	Font      struct {
		Path string `yaml:"path"`
	} `yaml:"font"`
	Audio struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"audio"`
	Log struct {
		Mode string `yaml:"mode"`
	} `yaml:"log"`
	Seed int64 `yaml:"seed"`
}

// Questions locates the question data source.
type Questions struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Table  string `yaml:"table"`
}

// Source formats.
const (
	FormatCSV    = "csv"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.Window.Width = 800
	cfg.Window.Height = 600
	cfg.Window.Title = "Quiz"
	cfg.Questions.Path = "questions.csv"
	cfg.Questions.Table = "questions"
	cfg.Audio.Enabled = true
	cfg.Log.Mode = "development"
	return cfg
}

// Load reads YAML config from path on top of Default. With optional set, a
// missing file yields the defaults.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolveFormat returns the explicit format or infers it from the file
// extension, falling back to CSV.
func (q Questions) ResolveFormat() string {
	if q.Format != "" {
		return strings.ToLower(q.Format)
	}
	switch strings.ToLower(filepath.Ext(q.Path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}
