package state

import (
	"context"
	"fmt"

	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/port"
	"golang-netreconcile/internal/types"

	"gopkg.in/yaml.v3"
)

// FileStore keeps the state in a single YAML document.
type FileStore struct {
	path string
	fm   port.FileManager
}

var _ port.StateStore = (*FileStore)(nil)

// NewFileStore creates a YAML store at path.
func NewFileStore(path string, fm port.FileManager) *FileStore {
	return &FileStore{path: path, fm: fm}
}

// Load returns the stored state, or an empty one when the file does not exist.
func (s *FileStore) Load(ctx context.Context) (*types.PersistedState, error) {
	if !s.fm.FileExists(s.path) {
		logging.WithComponent("state").Debugf("No state at %s, starting empty", s.path)
		return types.NewPersistedState(), nil
	}
	data, err := s.fm.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	st := &types.PersistedState{}
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to parse state %s: %w", s.path, err)
	}
	return st.Normalize(), nil
}

// Save replaces the file.
func (s *FileStore) Save(ctx context.Context, st *types.PersistedState) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	return s.fm.WriteFile(s.path, data, 0o600)
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
