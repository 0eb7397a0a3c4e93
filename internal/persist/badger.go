package persist

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// BadgerConfig holds configuration for a BadgerDB-backed slot store.
type BadgerConfig struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM. Useful for tests.
	InMemory bool

	// SyncWrites fsyncs every save.
	SyncWrites bool

	// Logger receives BadgerDB's internal logging. Nil disables it.
	Logger *slog.Logger
}

// DefaultBadgerConfig returns a durable on-disk configuration rooted at path.
func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{Path: path, SyncWrites: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// BadgerStore keeps slot documents in a BadgerDB keyspace.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) a BadgerDB slot store.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("[OpenBadger] path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, errors.Wrapf(err, "[OpenBadger] failed to create directory: %s", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "[OpenBadger] failed to open database")
	}
	return &BadgerStore{db: db}, nil
}

func slotKey(slot int) []byte {
	return []byte(fmt.Sprintf("slot/%03d", slot))
}

// Save stores data under the slot key.
func (s *BadgerStore) Save(slot int, data []byte) error {
	if slot < 1 {
		return ErrInvalidSlot
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(slotKey(slot), data)
	})
	return errors.Wrapf(err, "[BadgerStore.Save] slot %d", slot)
}

// Load returns the document stored under the slot key.
func (s *BadgerStore) Load(slot int) ([]byte, error) {
	if slot < 1 {
		return nil, ErrInvalidSlot
	}
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(slotKey(slot))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrapf(ErrSlotNotFound, "[BadgerStore.Load] slot %d", slot)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[BadgerStore.Load] slot %d", slot)
	}
	return data, nil
}

// Close releases the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
