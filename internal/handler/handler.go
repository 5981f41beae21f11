package handler

import (
	"context"
	"sync"
	"time"

	"thesaurusrex/internal/dictionary"
	"thesaurusrex/internal/middleware"
	"thesaurusrex/internal/modal"
	"thesaurusrex/internal/panel"
	"thesaurusrex/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const requestTimeout = 15 * time.Second

// Sender delivers messages to a chat; *tele.Bot implements it
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	sender          Sender
	authService     *service.AuthService
	prefsService    *service.PreferencesService
	bookmarkService *service.BookmarkService
	lookup          dictionary.Lookuper
	logger          *zap.Logger

	// one modal and one panel per user
	sessions   map[int64]*session
	sessionMux sync.RWMutex
}

type session struct {
	modal   *modal.Modal
	panel   *panel.Panel
	release func()
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	prefsService *service.PreferencesService,
	bookmarkService *service.BookmarkService,
	lookup dictionary.Lookuper,
	logger *zap.Logger,
) *Handler {
	h := newHandler(bot, authService, prefsService, bookmarkService, lookup, logger)
	h.bot = bot
	return h
}

func newHandler(
	sender Sender,
	authService *service.AuthService,
	prefsService *service.PreferencesService,
	bookmarkService *service.BookmarkService,
	lookup dictionary.Lookuper,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sender:          sender,
		authService:     authService,
		prefsService:    prefsService,
		bookmarkService: bookmarkService,
		lookup:          lookup,
		logger:          logger,
		sessions:        make(map[int64]*session),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.AuthMiddleware(h.authService, h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/settings", h.handleSettings)
	h.bot.Handle("/bookmarks", h.handleBookmarks)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPlay, h.handlePlay)
	h.bot.Handle(&btnBookmark, h.handleToggleBookmark)
	h.bot.Handle(&btnToggleDefinition, h.handleToggleDefinition)
	h.bot.Handle(&btnTogglePlaySound, h.handleTogglePlaySound)
	h.bot.Handle(&btnShowSettings, h.handleShowSettings)
	h.bot.Handle(&btnShowBookmarks, h.handleShowBookmarks)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Close finishes queued writes of every session
func (h *Handler) Close() {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	for userID, s := range h.sessions {
		s.release()
		s.modal.Close()
		s.panel.Close()
		delete(h.sessions, userID)
	}
}

// session returns the user's modal and panel, creating them on first use
func (h *Handler) session(c tele.Context) *session {
	userID := c.Sender().ID

	h.sessionMux.RLock()
	s, exists := h.sessions[userID]
	h.sessionMux.RUnlock()
	if exists {
		return s
	}

	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	if s, exists := h.sessions[userID]; exists {
		return s
	}

	logger := h.logger.With(zap.Int64("user_id", userID))
	player := &chatPlayer{sender: h.sender, chat: c.Recipient(), logger: logger}
	m := modal.New(userID, h.lookup, h.bookmarkService, h.prefsService, player, logger)
	s = &session{
		modal:   m,
		panel:   panel.New(userID, h.prefsService, h.bookmarkService, logger),
		release: m.Observe(&logEmbedder{logger: logger}),
	}
	h.sessions[userID] = s
	return s
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Inline keyboard buttons
var (
	btnPlay = tele.Btn{
		Unique: "play",
		Text:   "🔊 Play",
	}
	btnBookmark = tele.Btn{
		Unique: "bookmark",
	}
	btnToggleDefinition = tele.Btn{
		Unique: "toggle_definition",
	}
	btnTogglePlaySound = tele.Btn{
		Unique: "toggle_play_sound",
	}
	btnShowSettings = tele.Btn{
		Unique: "show_settings",
		Text:   "⚙️ Settings",
	}
	btnShowBookmarks = tele.Btn{
		Unique: "show_bookmarks",
		Text:   "🔖 Bookmarks",
	}
)
