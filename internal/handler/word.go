package handler

import (
	"errors"
	"strings"

	"thesaurusrex/internal/modal"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText looks up the word in a message. A message may also carry a
// modal activation URL with the word in its text parameter.
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	word := text
	if parsed, ok := modal.ParseActivation(text); ok {
		word = parsed
	}
	if word == "" {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	s := h.session(c)
	if err := s.modal.Open(ctx, word); err != nil {
		if errors.Is(err, modal.ErrStale) {
			// the newer message answers
			return nil
		}
		h.logger.Warn("Failed to open definition",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
			zap.String("word", word),
		)
		return nil
	}

	state := s.modal.State()
	if state.Entry == nil {
		return c.Send(state.Render())
	}
	return c.Send(state.Render(), modalMarkup(state))
}

// handlePlay replays the pronunciation of the current word
func (h *Handler) handlePlay(c tele.Context) error {
	s := h.session(c)
	if word := s.modal.State().Word; word != "" && !tokenMatches(c.Callback().Data, word) {
		return respondOutdated(c)
	}

	ctx, cancel := requestContext()
	defer cancel()

	s.modal.Replay(ctx)
	return c.Respond()
}

// handleToggleBookmark flips the bookmark of the current word
func (h *Handler) handleToggleBookmark(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	s := h.session(c)
	if word := s.modal.State().Word; word != "" && !tokenMatches(c.Callback().Data, word) {
		return respondOutdated(c)
	}
	bookmarked, err := s.modal.ToggleBookmark(ctx)
	if errors.Is(err, modal.ErrNoResult) {
		return c.Respond(&tele.CallbackResponse{Text: "Nothing to bookmark yet"})
	}

	state := s.modal.State()
	if err := c.Edit(state.Render(), modalMarkup(state)); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(state.Render(), modalMarkup(state))
	}

	text := "Removed from bookmarks"
	if bookmarked {
		text = "Bookmarked"
	}
	return c.Respond(&tele.CallbackResponse{Text: text})
}

// respondOutdated answers a tap on the buttons of a word that is no longer current
func respondOutdated(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{
		Text:      "This definition is outdated. Send the word again.",
		ShowAlert: true,
	})
}

// modalMarkup returns the play and bookmark buttons for a looked up word.
// Both carry the word so taps on older messages can be told apart.
func modalMarkup(state modal.State) *tele.ReplyMarkup {
	bookmark := btnBookmark
	bookmark.Text = "☆ Bookmark"
	if state.Bookmarked {
		bookmark.Text = "★ Bookmarked"
	}
	bookmark.Data = wordToken(bookmark.Unique, state.Word)

	markup := &tele.ReplyMarkup{}
	row := tele.Row{bookmark}
	if state.Entry != nil && state.Entry.AudioURL() != "" {
		play := btnPlay
		play.Data = wordToken(play.Unique, state.Word)
		row = tele.Row{play, bookmark}
	}
	markup.Inline(row)
	return markup
}
