package panel

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/queue"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Texts shown by the panel
const (
	SettingsTitle         = "Quick settings"
	BookmarksTitle        = "Bookmarks"
	DefinitionToggleLabel = "Display Button"
	DefinitionToggleHelp  = "Enable this setting to show a button on highlighted text for quick access to its definition."
	PlaySoundToggleLabel  = "Play Sound On Definition"
	PlaySoundToggleHelp   = "Enable a sound to play each time a word's definition is shown."
	EmptyBookmarksMessage = "No bookmarks yet. Your bookmarked words will appear here."
)

// PreferencesStore reads and writes the preference flags
type PreferencesStore interface {
	Get(ctx context.Context, userID int64) domain.Preferences
	Set(ctx context.Context, userID int64, key string, value bool) error
}

// BookmarkStore lists and removes bookmarks
type BookmarkStore interface {
	List(ctx context.Context, userID int64) []domain.Bookmark
	Remove(ctx context.Context, userID int64, word string) error
}

// Panel is the settings and bookmarks surface. It keeps a local copy of the
// preferences and the bookmark list; the copy is refreshed from the store on
// Mount and every time the bookmarks screen is entered.
type Panel struct {
	userID    int64
	prefs     PreferencesStore
	bookmarks BookmarkStore
	writes    *queue.Queue
	logger    *zap.Logger

	mu          sync.Mutex
	screen      domain.Screen
	preferences domain.Preferences
	items       []domain.Bookmark
}

// New creates a panel showing the settings screen
func New(userID int64, prefs PreferencesStore, bookmarks BookmarkStore, logger *zap.Logger) *Panel {
	return &Panel{
		userID:      userID,
		prefs:       prefs,
		bookmarks:   bookmarks,
		writes:      queue.New(16, logger),
		logger:      logger.With(zap.Int64("user_id", userID)),
		screen:      domain.ScreenSettings,
		preferences: domain.DefaultPreferences(),
	}
}

// Mount loads the preferences and refreshes the current screen
func (p *Panel) Mount(ctx context.Context) {
	p.drain(ctx)
	prefs := p.prefs.Get(ctx, p.userID)

	p.mu.Lock()
	p.preferences = prefs
	screen := p.screen
	p.mu.Unlock()

	if screen == domain.ScreenBookmarks {
		p.refreshBookmarks(ctx)
	}
}

// Screen returns the visible screen
func (p *Panel) Screen() domain.Screen {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.screen
}

// SelectScreen switches screens. Entering the bookmarks screen always re-reads
// the list so bookmarks added elsewhere show up.
func (p *Panel) SelectScreen(ctx context.Context, screen domain.Screen) error {
	if !screen.Valid() {
		return fmt.Errorf("unknown screen %q", screen)
	}

	p.mu.Lock()
	p.screen = screen
	p.mu.Unlock()

	if screen == domain.ScreenBookmarks {
		p.refreshBookmarks(ctx)
	}
	return nil
}

// Preferences returns the local copy of the flags
func (p *Panel) Preferences() domain.Preferences {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.preferences
}

// Bookmarks returns the local copy of the list
func (p *Panel) Bookmarks() []domain.Bookmark {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Bookmark(nil), p.items...)
}

// ToggleDefinition flips definitionEnabled and returns the new value
func (p *Panel) ToggleDefinition() bool {
	p.mu.Lock()
	value := !p.preferences.DefinitionEnabled
	p.preferences.DefinitionEnabled = value
	p.mu.Unlock()

	p.persistPreference(domain.KeyDefinitionEnabled, value)
	return value
}

// TogglePlaySound flips playSoundEnabled and returns the new value
func (p *Panel) TogglePlaySound() bool {
	p.mu.Lock()
	value := !p.preferences.PlaySoundEnabled
	p.preferences.PlaySoundEnabled = value
	p.mu.Unlock()

	p.persistPreference(domain.KeyPlaySoundEnabled, value)
	return value
}

// RemoveBookmark drops word from the local list and queues the store removal.
// It reports whether word was in the local list.
func (p *Panel) RemoveBookmark(word string) bool {
	p.mu.Lock()
	kept := lo.Filter(p.items, func(b domain.Bookmark, _ int) bool {
		return b.Word != word
	})
	removed := len(kept) != len(p.items)
	p.items = kept
	p.mu.Unlock()

	if !removed {
		return false
	}

	err := p.writes.Submit(func(ctx context.Context) error {
		return p.bookmarks.Remove(ctx, p.userID, word)
	})
	if err != nil {
		p.logger.Warn("Failed to queue bookmark removal", zap.String("word", word), zap.Error(err))
	}
	return true
}

// Flush waits for queued writes
func (p *Panel) Flush(ctx context.Context) error {
	return p.writes.Drain(ctx)
}

// Close finishes queued writes
func (p *Panel) Close() {
	p.writes.Close()
}

// Render returns the visible screen as plain text
func (p *Panel) Render() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	if p.screen == domain.ScreenBookmarks {
		sb.WriteString(BookmarksTitle + "\n\n")
		if len(p.items) == 0 {
			sb.WriteString(EmptyBookmarksMessage)
			return sb.String()
		}
		for i, b := range p.items {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(b.Word + "\n" + b.PartOfSpeech + " " + b.Phonetic)
		}
		return sb.String()
	}

	sb.WriteString(SettingsTitle + "\n\n")
	sb.WriteString(DefinitionToggleLabel + ": " + onOff(p.preferences.DefinitionEnabled) + "\n")
	sb.WriteString(DefinitionToggleHelp + "\n\n")
	sb.WriteString(PlaySoundToggleLabel + ": " + onOff(p.preferences.PlaySoundEnabled) + "\n")
	sb.WriteString(PlaySoundToggleHelp)
	return sb.String()
}

func (p *Panel) refreshBookmarks(ctx context.Context) {
	p.drain(ctx)
	items := p.bookmarks.List(ctx, p.userID)

	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
}

func (p *Panel) persistPreference(key string, value bool) {
	err := p.writes.Submit(func(ctx context.Context) error {
		return p.prefs.Set(ctx, p.userID, key, value)
	})
	if err != nil {
		p.logger.Warn("Failed to queue preference write", zap.String("key", key), zap.Error(err))
	}
}

// drain lets our own queued writes land before a read
func (p *Panel) drain(ctx context.Context) {
	if err := p.writes.Drain(ctx); err != nil {
		p.logger.Debug("Failed to drain pending writes", zap.Error(err))
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
