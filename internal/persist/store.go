package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// ErrSlotNotFound is returned by stores when a slot has never been saved.
var ErrSlotNotFound = errors.New("slot not found")

// ErrInvalidSlot is returned for slot numbers below 1.
var ErrInvalidSlot = errors.New("slot must be positive")

// Store reads and writes raw slot documents.
type Store interface {
	Save(slot int, data []byte) error
	Load(slot int) ([]byte, error)
}

// FileStore keeps one save_<slot>.json file per slot in a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on the
// first save.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{dir: dir}
}

// Path returns the file used for slot.
func (s *FileStore) Path(slot int) string {
	return filepath.Join(s.dir, fmt.Sprintf("save_%d.json", slot))
}

// Save writes data to the slot file, replacing any earlier save.
func (s *FileStore) Save(slot int, data []byte) error {
	if slot < 1 {
		return ErrInvalidSlot
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "[FileStore.Save] failed to create directory: %s", s.dir)
	}
	path := s.Path(slot)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "[FileStore.Save] failed to write file: %s", path)
	}
	return nil
}

// Load reads the slot file.
func (s *FileStore) Load(slot int) ([]byte, error) {
	if slot < 1 {
		return nil, ErrInvalidSlot
	}
	path := s.Path(slot)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrSlotNotFound, "[FileStore.Load] %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[FileStore.Load] failed to read file: %s", path)
	}
	return data, nil
}

var slotFilePattern = regexp.MustCompile(`^save_([0-9]+)\.json$`)

// SlotFromPath extracts the slot number from a save file path.
func SlotFromPath(path string) (int, bool) {
	m := slotFilePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, false
	}
	slot, err := strconv.Atoi(m[1])
	if err != nil || slot < 1 {
		return 0, false
	}
	return slot, true
}
