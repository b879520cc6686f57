// Package pending keeps captured images on disk when a scan cannot run,
// so they can be retried or discarded later.
//
// Blobs live next to a single pending.json metadata list that is rewritten
// whole on every change.
package pending

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/ecoscan/internal/model"
)

// MetadataFile is the name of the metadata list inside the store directory.
const MetadataFile = "pending.json"

const blobLayout = "20060102T150405.000000000"

// maxNameTries bounds the suffixes tried for captures sharing a timestamp.
const maxNameTries = 100

// ErrNoFreeName is returned when every candidate blob name is taken.
var ErrNoFreeName = errors.New("pending: no free blob name")

// Store is a directory-backed pending-upload store.
type Store struct {
	dir string
	now func() time.Time
	log *zap.Logger
	mu  sync.Mutex
}

// New returns a store rooted at dir. The directory is created on first save.
func New(dir string, log *zap.Logger) *Store {
	return &Store{dir: dir, now: time.Now, log: log}
}

// WithClock overrides time.Now for blob naming.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Dir returns the store directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the absolute blob path for fileName.
func (s *Store) Path(fileName string) string { return filepath.Join(s.dir, filepath.Base(fileName)) }

// SaveLocally writes image under a timestamp-derived name and records it.
// The error is informational: failures are logged and the caller is not
// expected to change its outcome.
func (s *Store) SaveLocally(image []byte) (model.PendingCapture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.now()
	pc := model.PendingCapture{CapturedAt: at}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		s.log.Warn("pending: create dir failed", zap.String("dir", s.dir), zap.Error(err))
		return pc, err
	}
	name, err := s.uniqueName(at)
	if err != nil {
		s.log.Warn("pending: pick blob name failed", zap.String("dir", s.dir), zap.Error(err))
		return pc, err
	}
	pc.FileName = name
	if err := os.WriteFile(s.Path(pc.FileName), image, 0o600); err != nil {
		s.log.Warn("pending: write blob failed", zap.String("file", pc.FileName), zap.Error(err))
		return pc, err
	}
	list := s.read()
	list = append(list, pc)
	if err := s.write(list); err != nil {
		s.log.Warn("pending: write metadata failed", zap.Error(err))
		return pc, err
	}
	return pc, nil
}

// uniqueName returns the first unused name derived from at. Stat errors
// other than not-exist are returned rather than treated as a taken name.
func (s *Store) uniqueName(at time.Time) (string, error) {
	base := at.UTC().Format(blobLayout)
	name := base + ".jpg"
	for i := 1; i <= maxNameTries; i++ {
		_, err := os.Stat(s.Path(name))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return name, nil
		case err != nil:
			return "", fmt.Errorf("stat %s: %w", name, err)
		}
		name = fmt.Sprintf("%s-%d.jpg", base, i)
	}
	return "", ErrNoFreeName
}

// ListPending returns the recorded captures whose blob still exists.
// Unreadable or malformed metadata yields an empty list.
func (s *Store) ListPending() []model.PendingCapture {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.PendingCapture{}
	for _, pc := range s.read() {
		if _, err := os.Stat(s.Path(pc.FileName)); err != nil {
			continue
		}
		out = append(out, pc)
	}
	return out
}

// Load reads the blob of a recorded capture.
func (s *Store) Load(fileName string) ([]byte, error) {
	return os.ReadFile(s.Path(fileName))
}

// DeleteLocally removes the blob and its metadata entry. Unknown names are a no-op.
func (s *Store) DeleteLocally(fileName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(fileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("pending: remove blob failed", zap.String("file", fileName), zap.Error(err))
	}
	list := s.read()
	kept := list[:0]
	for _, pc := range list {
		if pc.FileName != fileName {
			kept = append(kept, pc)
		}
	}
	if len(kept) == len(list) {
		return
	}
	if err := s.write(kept); err != nil {
		s.log.Warn("pending: write metadata failed", zap.Error(err))
	}
}

func (s *Store) read() []model.PendingCapture {
	raw, err := os.ReadFile(filepath.Join(s.dir, MetadataFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("pending: read metadata failed", zap.Error(err))
		}
		return nil
	}
	var list []model.PendingCapture
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Warn("pending: malformed metadata", zap.Error(err))
		return nil
	}
	return list
}

func (s *Store) write(list []model.PendingCapture) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	tmp := filepath.Join(s.dir, MetadataFile+".tmp")
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(s.dir, MetadataFile))
}
