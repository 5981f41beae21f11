package testutil

import (
	"context"

	"thesaurusrex/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockKVStore is a mock for repository.KVStore
type MockKVStore struct {
	mock.Mock
}

func (m *MockKVStore) Get(ctx context.Context, userID int64, key string) ([]byte, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKVStore) Set(ctx context.Context, userID int64, key string, value []byte) error {
	args := m.Called(ctx, userID, key, value)
	return args.Error(0)
}

func (m *MockKVStore) Delete(ctx context.Context, userID int64, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}

// MockCompactingKVStore is a MockKVStore that also implements repository.Compactor
type MockCompactingKVStore struct {
	MockKVStore
}

func (m *MockCompactingKVStore) Compact(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockLookuper is a mock for dictionary lookups
type MockLookuper struct {
	mock.Mock
}

func (m *MockLookuper) Lookup(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DictionaryEntry), args.Error(1)
}

// MockPlayer is a mock for pronunciation playback
type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Play(ctx context.Context, audioURL string) error {
	args := m.Called(ctx, audioURL)
	return args.Error(0)
}
