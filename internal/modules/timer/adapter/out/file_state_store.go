package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"studya/internal/modules/timer/domain"
	timerout "studya/internal/modules/timer/port/out"
)

// FileStateStore persists the whole engine state (mode, countdown, live
// session) to .studya/state.json so a session survives process restarts and
// host suspends.
type FileStateStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStateStore(statePath string) timerout.StateStore {
	return &FileStateStore{path: statePath}
}

func (s *FileStateStore) Save(_ context.Context, state domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode timer state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write timer state: %w", err)
	}
	return nil
}

func (s *FileStateStore) Load(_ context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.State{}, nil
		}
		return domain.State{}, fmt.Errorf("read timer state: %w", err)
	}
	if len(raw) == 0 {
		return domain.State{}, nil
	}
	state := domain.State{}
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.State{}, fmt.Errorf("decode timer state: %w", err)
	}
	return state, nil
}

func (s *FileStateStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear timer state: %w", err)
	}
	return nil
}
