package service

import (
	"context"
	"encoding/json"
	"fmt"

	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// BookmarkService manages the ordered bookmark list, newest first.
//
// Add does not deduplicate: callers check Contains first. Read-modify-write
// sequences are not atomic across processes, the last writer wins.
type BookmarkService struct {
	store  repository.KVStore
	logger *zap.Logger
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(store repository.KVStore, logger *zap.Logger) *BookmarkService {
	return &BookmarkService{
		store:  store,
		logger: logger,
	}
}

// List returns the persisted bookmarks, or an empty list if unset or unreadable
func (s *BookmarkService) List(ctx context.Context, userID int64) []domain.Bookmark {
	bookmarks, err := s.load(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to read bookmarks, using empty list",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return []domain.Bookmark{}
	}
	return bookmarks
}

// Contains reports whether word is bookmarked
func (s *BookmarkService) Contains(ctx context.Context, userID int64, word string) bool {
	return containsWord(s.List(ctx, userID), word)
}

// Add prepends bookmark to the list
func (s *BookmarkService) Add(ctx context.Context, userID int64, bookmark domain.Bookmark) error {
	if bookmark.Word == "" {
		return fmt.Errorf("bookmark word cannot be empty")
	}

	current, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	updated := append([]domain.Bookmark{bookmark}, current...)
	if err := s.save(ctx, userID, updated); err != nil {
		return err
	}

	s.logger.Info("Bookmark added",
		zap.Int64("user_id", userID),
		zap.String("word", bookmark.Word),
	)
	return nil
}

// Remove drops every bookmark whose word equals word
func (s *BookmarkService) Remove(ctx context.Context, userID int64, word string) error {
	current, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	updated := withoutWord(current, word)
	if len(updated) == len(current) {
		return nil
	}

	if err := s.save(ctx, userID, updated); err != nil {
		return err
	}

	s.logger.Info("Bookmark removed",
		zap.Int64("user_id", userID),
		zap.String("word", word),
	)
	return nil
}

func (s *BookmarkService) load(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	data, err := s.store.Get(ctx, userID, domain.KeyBookmarkedWords)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.Bookmark{}, nil
	}

	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, fmt.Errorf("failed to decode bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	return bookmarks, nil
}

func (s *BookmarkService) save(ctx context.Context, userID int64, bookmarks []domain.Bookmark) error {
	data, err := json.Marshal(bookmarks)
	if err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	return s.store.Set(ctx, userID, domain.KeyBookmarkedWords, data)
}

func containsWord(bookmarks []domain.Bookmark, word string) bool {
	return lo.ContainsBy(bookmarks, func(b domain.Bookmark) bool {
		return b.Word == word
	})
}

func withoutWord(bookmarks []domain.Bookmark, word string) []domain.Bookmark {
	return lo.Filter(bookmarks, func(b domain.Bookmark, _ int) bool {
		return b.Word != word
	})
}
