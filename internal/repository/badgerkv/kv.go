package badgerkv

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// gcDiscardRatio is the minimum reclaimable fraction before a value log file is rewritten
const gcDiscardRatio = 0.5

// Store implements repository.KVStore on an embedded Badger database
type Store struct {
	db     *badger.DB
	logger *zap.Logger
}

// Open opens or creates the database at path
func Open(path string, logger *zap.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	logger.Info("Badger database opened", zap.String("path", path))

	return &Store{db: db, logger: logger}, nil
}

// Close flushes and closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// scopedKey builds "<userID>:<key>"
func scopedKey(userID int64, key string) []byte {
	buf := make([]byte, 0, 20+1+len(key))
	buf = strconv.AppendInt(buf, userID, 10)
	buf = append(buf, ':')
	buf = append(buf, key...)
	return buf
}

// Get returns the value stored under key, or nil if it is unset
func (s *Store) Get(ctx context.Context, userID int64, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(scopedKey(userID, key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key
func (s *Store) Set(ctx context.Context, userID int64, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(scopedKey(userID, key), value)
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting an unset key is not an error
func (s *Store) Delete(ctx context.Context, userID int64, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(scopedKey(userID, key))
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Compact runs value log garbage collection until nothing is left to rewrite
func (s *Store) Compact(ctx context.Context) error {
	rewritten := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			break
		}
		if err != nil {
			return fmt.Errorf("value log gc: %w", err)
		}
		rewritten++
	}

	s.logger.Debug("Badger value log gc finished", zap.Int("files_rewritten", rewritten))
	return nil
}
