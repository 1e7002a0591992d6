package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"todolist/internal/todo"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultLocale         = "en"
	DefaultLogLevel       = "info"

	appDirName = "todolist"
	envConfig  = "TODOLIST_CONFIG"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Edit    string `toml:"edit"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
	Sort    string `toml:"sort"`
	NextDay string `toml:"next_day"`
	PrevDay string `toml:"prev_day"`
}

type Config struct {
	Locale      string `toml:"locale"`
	DefaultSort string `toml:"default_sort"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	Keys        Keymap `toml:"keys"`
}

// SortMode returns the configured initial sort, falling back to
// uncompleted-first for unknown names.
func (c Config) SortMode() todo.SortMode {
	if m, ok := todo.ParseSortMode(c.DefaultSort); ok {
		return m
	}
	return todo.SortUncompleted
}

// ResolveConfigPath returns $TODOLIST_CONFIG when set, otherwise
// config.toml under the user config directory.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(envConfig)); p != "" {
		return expandHome(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path. A missing file is created
// with the defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := defaultConfig()
	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	c.DefaultSort = strings.TrimSpace(c.DefaultSort)
	if c.DefaultSort == "" {
		c.DefaultSort = def.DefaultSort
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	c.LogFile = expandHome(strings.TrimSpace(c.LogFile))

	// Keys are not trimmed: " " is a valid binding.
	keys := []*string{&c.Keys.Quit, &c.Keys.Add, &c.Keys.Up, &c.Keys.Down, &c.Keys.Toggle, &c.Keys.Delete,
		&c.Keys.Edit, &c.Keys.Confirm, &c.Keys.Cancel, &c.Keys.Sort, &c.Keys.NextDay, &c.Keys.PrevDay}
	defaults := []string{def.Keys.Quit, def.Keys.Add, def.Keys.Up, def.Keys.Down, def.Keys.Toggle, def.Keys.Delete,
		def.Keys.Edit, def.Keys.Confirm, def.Keys.Cancel, def.Keys.Sort, def.Keys.NextDay, def.Keys.PrevDay}
	for i, k := range keys {
		if *k == "" {
			*k = defaults[i]
		}
	}
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func defaultConfig() Config {
	return Config{
		Locale:      DefaultLocale,
		DefaultSort: string(todo.SortUncompleted),
		LogLevel:    DefaultLogLevel,
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "d",
			Edit:    "e",
			Confirm: "enter",
			Cancel:  "esc",
			Sort:    "s",
			NextDay: "tab",
			PrevDay: "shift+tab",
		},
	}
}
