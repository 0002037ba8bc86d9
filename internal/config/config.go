package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/kitchendeck/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Timer    TimerConfig    `yaml:"timer"`
	Carousel CarouselConfig `yaml:"carousel"`
	Theme    string         `yaml:"theme"`
}

type TimerConfig struct {
	Seconds int    `yaml:"seconds"`
	Label   string `yaml:"label"`
}

type CarouselConfig struct {
	StartIndex     int           `yaml:"start_index"`
	Autoplay       bool          `yaml:"autoplay"`
	AutoplayEvery  time.Duration `yaml:"autoplay_every"`
	SwipeThreshold int           `yaml:"swipe_threshold"`
	Items          []models.Item `yaml:"items"`
}

// DefaultItems is the gallery shown when the config lists none.
func DefaultItems() []models.Item {
	return []models.Item{
		{ID: "white-flowers", Src: "https://images.unsplash.com/photo-1490750967868-88aa4486c946", Alt: "White Flowers"},
		{ID: "fern-fronds", Src: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e", Alt: "Fern Fronds"},
		{ID: "kingfisher", Src: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d", Alt: "Kingfisher Bird"},
		{ID: "lake-forest", Src: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4", Alt: "Lake and Forest"},
		{ID: "old-tree", Src: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e", Alt: "Old Tree"},
		{ID: "rolling-hills", Src: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4", Alt: "Rolling Hills"},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Seconds: RecipeTimerSeconds,
			Label:   "Pour-over coffee",
		},
		Carousel: CarouselConfig{
			StartIndex:     DefaultStartIndex,
			AutoplayEvery:  AutoplayInterval,
			SwipeThreshold: SwipeThreshold,
			Items:          DefaultItems(),
		},
		Theme: "default",
	}
}

// Validate reports the first problem that would stop the components from
// being built.
func (c *Config) Validate() error {
	if c.Timer.Seconds < 0 {
		return fmt.Errorf("timer.seconds must not be negative, got %d", c.Timer.Seconds)
	}
	if len(c.Carousel.Items) == 0 {
		return errors.New("carousel.items must not be empty")
	}
	if c.Carousel.StartIndex < 0 || c.Carousel.StartIndex >= len(c.Carousel.Items) {
		return fmt.Errorf("carousel.start_index %d outside [0, %d)", c.Carousel.StartIndex, len(c.Carousel.Items))
	}
	if c.Carousel.AutoplayEvery <= 0 {
		return fmt.Errorf("carousel.autoplay_every must be positive, got %s", c.Carousel.AutoplayEvery)
	}
	if c.Carousel.SwipeThreshold < 0 {
		return fmt.Errorf("carousel.swipe_threshold must not be negative, got %d", c.Carousel.SwipeThreshold)
	}
	return nil
}

// Manager loads and saves the YAML config file.
type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads path, writing the defaults there when the file does not
// exist yet.
func NewManager(path string) (*Manager, error) {
	m := &Manager{configPath: path}
	err := m.load()
	if errors.Is(err, fs.ErrNotExist) {
		m.config = DefaultConfig()
		if err := m.Save(); err != nil {
			return nil, err
		}
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}
	cfg := DefaultConfig()
	cfg.Carousel.Items = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", m.configPath, err)
	}
	if len(cfg.Carousel.Items) == 0 {
		cfg.Carousel.Items = DefaultItems()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}
	m.config = cfg
	return nil
}

func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(m.configPath, data, 0o644)
}

func (m *Manager) Config() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}
