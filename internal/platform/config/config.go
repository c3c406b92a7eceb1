package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	VaultPath  string
	DataDir    string
	DBPath     string
	StatePath  string
	GoalsPath  string
	ConfigPath string
	Settings   Settings
}

// Settings are the user-tunable knobs loaded from .studya/config.yaml.
// A missing file yields defaults; a malformed file is an error.
type Settings struct {
	WorkMinutes            int      `yaml:"work_minutes"`
	ShortBreakMinutes      int      `yaml:"short_break_minutes"`
	LongBreakMinutes       int      `yaml:"long_break_minutes"`
	LongBreakEvery         int      `yaml:"long_break_every"`
	AutoStartBreak         bool     `yaml:"auto_start_break"`
	AutoStartWork          bool     `yaml:"auto_start_work"`
	CarryTimerOnNewSession bool     `yaml:"carry_timer_on_new_session"`
	DefaultCategory        string   `yaml:"default_category"`
	BreakCategory          string   `yaml:"break_category"`
	WeekStart              string   `yaml:"week_start"`
	ProrateWeekly          bool     `yaml:"prorate_weekly"`
	TrackedPrefixes        []string `yaml:"tracked_prefixes"`
}

func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:            25,
		ShortBreakMinutes:      5,
		LongBreakMinutes:       15,
		LongBreakEvery:         4,
		AutoStartBreak:         true,
		AutoStartWork:          false,
		CarryTimerOnNewSession: true,
		DefaultCategory:        "Study",
		BreakCategory:          "Break",
		WeekStart:              "monday",
		ProrateWeekly:          true,
	}
}

func New(vaultPath string) (Config, error) {
	if vaultPath == "" {
		return Config{}, fmt.Errorf("vault path is required")
	}
	dataDir := filepath.Join(vaultPath, ".studya")
	cfg := Config{
		VaultPath:  vaultPath,
		DataDir:    dataDir,
		DBPath:     filepath.Join(dataDir, "studya.db"),
		StatePath:  filepath.Join(dataDir, "state.json"),
		GoalsPath:  filepath.Join(dataDir, "goals.yaml"),
		ConfigPath: filepath.Join(dataDir, "config.yaml"),
	}
	settings, err := loadSettings(cfg.ConfigPath)
	if err != nil {
		return Config{}, err
	}
	cfg.Settings = settings
	return cfg, nil
}

func loadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(payload, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s Settings) Validate() error {
	if s.WorkMinutes <= 0 || s.ShortBreakMinutes <= 0 || s.LongBreakMinutes <= 0 {
		return fmt.Errorf("timer durations must be positive")
	}
	if s.LongBreakEvery <= 0 {
		return fmt.Errorf("long_break_every must be positive")
	}
	if strings.TrimSpace(s.DefaultCategory) == "" || strings.TrimSpace(s.BreakCategory) == "" {
		return fmt.Errorf("default_category and break_category are required")
	}
	if _, err := ParseWeekday(s.WeekStart); err != nil {
		return err
	}
	return nil
}

func (s Settings) WorkDuration() time.Duration {
	return time.Duration(s.WorkMinutes) * time.Minute
}

func (s Settings) ShortBreakDuration() time.Duration {
	return time.Duration(s.ShortBreakMinutes) * time.Minute
}

func (s Settings) LongBreakDuration() time.Duration {
	return time.Duration(s.LongBreakMinutes) * time.Minute
}

func (s Settings) WeekStartDay() time.Weekday {
	day, err := ParseWeekday(s.WeekStart)
	if err != nil {
		return time.Monday
	}
	return day
}

// PathTracked reports whether a vault-relative path passes the allow-list.
// An empty prefix list admits everything.
func (s Settings) PathTracked(path string) bool {
	if len(s.TrackedPrefixes) == 0 {
		return true
	}
	normalized := filepath.ToSlash(path)
	for _, prefix := range s.TrackedPrefixes {
		if strings.HasPrefix(normalized, filepath.ToSlash(prefix)) {
			return true
		}
	}
	return false
}

func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown week_start day %q", name)
	}
}
