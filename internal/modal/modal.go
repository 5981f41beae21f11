// Package modal implements the definition modal shown over selected text:
// one lookup per word, pronunciation playback, a bookmark toggle and size
// reporting to the embedding surface.
package modal

import (
	"context"
	"errors"
	"sync"

	"thesaurusrex/internal/dictionary"
	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/queue"

	"go.uber.org/zap"
)

var (
	// ErrEmptyWord is returned when Open is called without a word
	ErrEmptyWord = errors.New("empty word")
	// ErrNoResult is returned when toggling a bookmark without a lookup result
	ErrNoResult = errors.New("no lookup result")
	// ErrStale is returned when a lookup response arrives after a newer word was opened
	ErrStale = errors.New("lookup superseded by a newer word")
)

// BookmarkStore is the part of the bookmark service the modal uses
type BookmarkStore interface {
	Contains(ctx context.Context, userID int64, word string) bool
	Add(ctx context.Context, userID int64, bookmark domain.Bookmark) error
	Remove(ctx context.Context, userID int64, word string) error
}

// PreferencesReader reads the preference flags
type PreferencesReader interface {
	Get(ctx context.Context, userID int64) domain.Preferences
}

// Player plays a pronunciation audio URL
type Player interface {
	Play(ctx context.Context, audioURL string) error
}

// State is a snapshot of what the modal shows
type State struct {
	Word       string
	Entry      *domain.DictionaryEntry
	Err        error
	Bookmarked bool
	Loading    bool
}

// Modal owns the lookup result for the current word and a local bookmark flag.
// The bookmark flag is updated immediately; the store write is queued.
type Modal struct {
	userID    int64
	lookup    dictionary.Lookuper
	bookmarks BookmarkStore
	prefs     PreferencesReader
	player    Player
	writes    *queue.Queue
	logger    *zap.Logger

	mu         sync.Mutex
	generation uint64
	word       string
	entry      *domain.DictionaryEntry
	lookupErr  error
	loading    bool
	bookmarked bool

	observers      map[int]*observer
	nextObserverID int
}

// New creates a modal for one installation. player may be nil.
func New(
	userID int64,
	lookup dictionary.Lookuper,
	bookmarks BookmarkStore,
	prefs PreferencesReader,
	player Player,
	logger *zap.Logger,
) *Modal {
	return &Modal{
		userID:    userID,
		lookup:    lookup,
		bookmarks: bookmarks,
		prefs:     prefs,
		player:    player,
		writes:    queue.New(16, logger),
		logger:    logger.With(zap.Int64("user_id", userID)),
		observers: make(map[int]*observer),
	}
}

// Open makes word the current word and looks it up. Reopening the current,
// settled word does nothing. If another Open starts before the lookup returns,
// the response is dropped and ErrStale is returned.
func (m *Modal) Open(ctx context.Context, word string) error {
	if word == "" {
		return ErrEmptyWord
	}

	m.mu.Lock()
	if word == m.word && !m.loading && (m.entry != nil || m.lookupErr != nil) {
		m.mu.Unlock()
		return nil
	}
	m.generation++
	gen := m.generation
	m.word = word
	m.entry = nil
	m.lookupErr = nil
	m.loading = true
	m.bookmarked = false
	m.mu.Unlock()
	m.notifyResize()

	// our own queued toggles must land before we read the bookmark state
	if err := m.writes.Drain(ctx); err != nil {
		m.logger.Debug("Failed to drain pending writes", zap.Error(err))
	}
	bookmarked := m.bookmarks.Contains(ctx, m.userID, word)
	entry, err := m.lookup.Lookup(ctx, word)

	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		m.logger.Debug("Discarding stale lookup response", zap.String("word", word))
		return ErrStale
	}
	m.loading = false
	m.bookmarked = bookmarked
	if err != nil {
		m.lookupErr = dictionary.ErrNotFound
	} else {
		m.entry = entry
	}
	m.mu.Unlock()
	m.notifyResize()

	if err != nil {
		m.logger.Info("Lookup failed", zap.String("word", word), zap.Error(err))
		return nil
	}

	if !m.prefs.Get(ctx, m.userID).PlaySoundEnabled {
		return nil
	}
	// a newer Open may have started while the preferences were read
	m.mu.Lock()
	superseded := gen != m.generation
	m.mu.Unlock()
	if superseded {
		m.logger.Debug("Skipping playback for superseded word", zap.String("word", word))
		return ErrStale
	}
	m.play(ctx, entry)
	return nil
}

// State returns a snapshot of the modal
func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

// ToggleBookmark flips the bookmark state of the current word and returns the
// new state. It requires a lookup result and returns ErrNoResult otherwise.
func (m *Modal) ToggleBookmark(ctx context.Context) (bool, error) {
	m.mu.Lock()
	if m.entry == nil || m.loading {
		state := m.bookmarked
		m.mu.Unlock()
		return state, ErrNoResult
	}
	bookmarked := !m.bookmarked
	m.bookmarked = bookmarked
	word := m.word
	bookmark := domain.NewBookmark(word, m.entry)
	m.mu.Unlock()

	err := m.writes.Submit(func(ctx context.Context) error {
		if !bookmarked {
			return m.bookmarks.Remove(ctx, m.userID, word)
		}
		// the store does not deduplicate
		if m.bookmarks.Contains(ctx, m.userID, word) {
			return nil
		}
		return m.bookmarks.Add(ctx, m.userID, bookmark)
	})
	if err != nil {
		m.logger.Warn("Failed to queue bookmark write", zap.String("word", word), zap.Error(err))
	}

	return bookmarked, nil
}

// Replay plays the current word's pronunciation regardless of preferences
func (m *Modal) Replay(ctx context.Context) {
	m.mu.Lock()
	entry := m.entry
	m.mu.Unlock()

	if entry != nil {
		m.play(ctx, entry)
	}
}

// Flush waits for queued bookmark writes
func (m *Modal) Flush(ctx context.Context) error {
	return m.writes.Drain(ctx)
}

// Close releases every observer and finishes queued writes
func (m *Modal) Close() {
	m.mu.Lock()
	m.observers = make(map[int]*observer)
	m.mu.Unlock()

	m.writes.Close()
}

// play ignores missing audio and playback errors
func (m *Modal) play(ctx context.Context, entry *domain.DictionaryEntry) {
	audioURL := entry.AudioURL()
	if audioURL == "" || m.player == nil {
		m.logger.Debug("No pronunciation audio available", zap.String("word", entry.Word))
		return
	}
	if err := m.player.Play(ctx, audioURL); err != nil {
		m.logger.Debug("Pronunciation playback failed", zap.String("url", audioURL), zap.Error(err))
	}
}
