package highscore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata/v2"
)

// Save file location inside the application-data directory.
const (
	SaveObject   = "saves"
	SaveProperty = "saves.txt"
)

// DefaultKey is the record key holding the best score.
const DefaultKey = "highscore"

// Backend stores opaque blobs addressed by object and property keys.
// *gdata.Manager satisfies it.
type Backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

var _ Backend = (*gdata.Manager)(nil)

// Store reads and writes integer values of the save record.
type Store struct {
	backend Backend
}

// NewStore creates a store on top of an arbitrary backend.
func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// OpenAppData opens the per-platform application-data directory of appName
// (for example ~/.local/share/<appName> on Linux).
func OpenAppData(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open app data for %q: %w", appName, err)
	}
	return NewStore(m), nil
}

// OpenDir stores the record under dir/saves/saves.txt instead of the
// platform application-data directory.
func OpenDir(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}
	return NewStore(dirBackend{root: dir}), nil
}

// Load returns the stored value for key.
//
// A missing save is a first run: the record is created holding 0 and 0 is
// returned. A corrupt record yields 0 and an error wrapping ErrMalformed;
// callers are expected to carry on with 0.
func (s *Store) Load(key string) (int, error) {
	if !s.backend.ObjectPropExists(SaveObject, SaveProperty) {
		if err := s.write(Record{key: 0}); err != nil {
			return 0, err
		}
		return 0, nil
	}

	rec, err := s.read()
	if err != nil {
		return 0, err
	}
	return rec[key], nil
}

// Save writes value under key, keeping any other keys of the record.
// The value is written even if it did not change.
func (s *Store) Save(key string, value int) error {
	rec, err := s.read()
	if err != nil {
		// Never let a corrupt file block saving a fresh record.
		rec = make(Record)
	}
	rec[key] = value
	return s.write(rec)
}

func (s *Store) read() (Record, error) {
	if !s.backend.ObjectPropExists(SaveObject, SaveProperty) {
		return make(Record), nil
	}
	data, err := s.backend.LoadObjectProp(SaveObject, SaveProperty)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read save: %w", err)
	}
	rec, err := DecodeRecord(data)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) write(rec Record) error {
	if err := s.backend.SaveObjectProp(SaveObject, SaveProperty, rec.Encode()); err != nil {
		return fmt.Errorf("highscore: cannot write save: %w", err)
	}
	return nil
}

// dirBackend lays objects out as <root>/<object>/<property>.
type dirBackend struct {
	root string
}

func (d dirBackend) path(objectKey, propKey string) string {
	return filepath.Join(d.root, objectKey, propKey)
}

func (d dirBackend) ObjectPropExists(objectKey, propKey string) bool {
	_, err := os.Stat(d.path(objectKey, propKey))
	return err == nil
}

func (d dirBackend) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	data, err := os.ReadFile(d.path(objectKey, propKey))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (d dirBackend) SaveObjectProp(objectKey, propKey string, data []byte) error {
	p := d.path(objectKey, propKey)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}
