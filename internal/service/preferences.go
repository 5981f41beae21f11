package service

import (
	"context"
	"encoding/json"
	"fmt"

	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/repository"

	"go.uber.org/zap"
)

// PreferencesService reads and writes the preference flags
type PreferencesService struct {
	store  repository.KVStore
	logger *zap.Logger
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(store repository.KVStore, logger *zap.Logger) *PreferencesService {
	return &PreferencesService{
		store:  store,
		logger: logger,
	}
}

// Get returns both flags. Unset or unreadable flags resolve to their defaults;
// storage errors are logged, never returned.
func (s *PreferencesService) Get(ctx context.Context, userID int64) domain.Preferences {
	defaults := domain.DefaultPreferences()
	return domain.Preferences{
		DefinitionEnabled: s.readFlag(ctx, userID, domain.KeyDefinitionEnabled, defaults.DefinitionEnabled),
		PlaySoundEnabled:  s.readFlag(ctx, userID, domain.KeyPlaySoundEnabled, defaults.PlaySoundEnabled),
	}
}

// Set writes a single flag
func (s *PreferencesService) Set(ctx context.Context, userID int64, key string, value bool) error {
	if !domain.IsPreferenceKey(key) {
		return fmt.Errorf("unknown preference %q", key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal preference: %w", err)
	}

	if err := s.store.Set(ctx, userID, key, data); err != nil {
		return err
	}

	s.logger.Info("Preference updated",
		zap.Int64("user_id", userID),
		zap.String("key", key),
		zap.Bool("value", value),
	)
	return nil
}

func (s *PreferencesService) readFlag(ctx context.Context, userID int64, key string, def bool) bool {
	data, err := s.store.Get(ctx, userID, key)
	if err != nil {
		s.logger.Warn("Failed to read preference, using default",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("key", key),
		)
		return def
	}
	if data == nil {
		return def
	}

	var value bool
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("Malformed preference, using default",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("key", key),
		)
		return def
	}
	return value
}
