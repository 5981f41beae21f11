package service

import (
	"context"

	"thesaurusrex/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService reclaims storage space
type MaintenanceService struct {
	store  repository.KVStore
	logger *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(store repository.KVStore, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		store:  store,
		logger: logger,
	}
}

// Supported reports whether the backing store can be compacted
func (s *MaintenanceService) Supported() bool {
	_, ok := s.store.(repository.Compactor)
	return ok
}

// Compact runs the store's compaction, if it has one
func (s *MaintenanceService) Compact(ctx context.Context) error {
	compactor, ok := s.store.(repository.Compactor)
	if !ok {
		s.logger.Debug("Store does not support compaction, skipping")
		return nil
	}

	s.logger.Info("Starting storage compaction")

	if err := compactor.Compact(ctx); err != nil {
		s.logger.Error("Failed to compact storage", zap.Error(err))
		return err
	}

	s.logger.Info("Compaction completed successfully")
	return nil
}
