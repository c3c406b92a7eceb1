package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"studya/internal/modules/goal/domain"
	goalout "studya/internal/modules/goal/port/out"
)

type goalsFile struct {
	SchemaVersion int           `yaml:"schema_version"`
	Goals         []domain.Goal `yaml:"goals"`
}

type FileGoalStore struct {
	path string
}

func NewFileGoalStore(path string) goalout.GoalStore {
	return &FileGoalStore{path: path}
}

func (s *FileGoalStore) Load(_ context.Context) ([]domain.Goal, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Goal{}, nil
		}
		return nil, fmt.Errorf("read goals: %w", err)
	}
	file := goalsFile{}
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	return file.Goals, nil
}

func (s *FileGoalStore) Save(_ context.Context, goals []domain.Goal) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create goals dir: %w", err)
	}
	payload, err := yaml.Marshal(goalsFile{SchemaVersion: 1, Goals: goals})
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write goals: %w", err)
	}
	return nil
}
