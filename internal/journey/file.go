package journey

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// FileStore keeps the journey document as pretty-printed JSON on disk,
// the default backend for single-machine use.
type FileStore struct {
	path string
	log  *zap.Logger
}

// NewFileStore returns a store writing to path. log may be nil.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{path: path, log: log}
}

// Path returns the location of the journey document.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the journey document. A missing file yields a fresh
// document. A file that no longer parses is set aside with a .corrupt
// suffix and the journey restarts fresh rather than refusing to run.
func (fs *FileStore) Load(ctx context.Context) (*State, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("journey: reading %s: %w", fs.path, err)
	}

	st := NewState()
	if err := json.Unmarshal(data, st); err != nil {
		corrupt := fs.path + ".corrupt"
		fs.log.Warn("journey state unreadable, starting fresh",
			zap.String("path", fs.path),
			zap.String("moved_to", corrupt),
			zap.Error(err))
		if renameErr := os.Rename(fs.path, corrupt); renameErr != nil {
			return nil, fmt.Errorf("journey: setting aside corrupt state: %w", renameErr)
		}
		return NewState(), nil
	}
	normalize(st)
	return st, nil
}

// Save writes the journey document, creating parent directories as
// needed.
func (fs *FileStore) Save(ctx context.Context, st *State) error {
	st.LastUpdated = time.Now().UTC()
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("journey: encoding state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("journey: creating state dir: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0o644); err != nil {
		return fmt.Errorf("journey: writing %s: %w", fs.path, err)
	}
	return nil
}

// Backup copies the journey document to <path>.backup. Nothing to back
// up is not an error.
func (fs *FileStore) Backup(ctx context.Context) error {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("journey: reading %s for backup: %w", fs.path, err)
	}
	backup := fs.path + ".backup"
	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return fmt.Errorf("journey: writing backup %s: %w", backup, err)
	}
	fs.log.Info("journey state backed up", zap.String("path", backup))
	return nil
}

// normalize repairs nil maps and slices after decoding older or
// hand-edited documents.
func normalize(st *State) {
	if st.CompletedGems == nil {
		st.CompletedGems = []string{}
	}
	if st.GemOutputs == nil {
		st.GemOutputs = map[string]Output{}
	}
	if st.Conversations == nil {
		st.Conversations = map[string][]Message{}
	}
}
