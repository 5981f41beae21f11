package handler

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"unicode"

	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/panel"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	removePrefix = "rm_"

	// Telegram rejects callback data longer than this
	maxCallbackData = 64

	wordTokenPrefix = "w:"
	hashTokenPrefix = "h:"
)

// wordToken identifies word inside callback data. The word itself is used
// when it fits the remaining budget, otherwise its fnv hash.
func wordToken(unique, word string) string {
	budget := maxCallbackData - len("\f"+unique+"|")
	if len(wordTokenPrefix)+len(word) <= budget {
		return wordTokenPrefix + word
	}
	h := fnv.New64a()
	h.Write([]byte(word))
	return fmt.Sprintf("%s%x", hashTokenPrefix, h.Sum64())
}

// tokenMatches reports whether token was built for word
func tokenMatches(token, word string) bool {
	switch {
	case strings.HasPrefix(token, wordTokenPrefix):
		return strings.TrimPrefix(token, wordTokenPrefix) == word
	case strings.HasPrefix(token, hashTokenPrefix):
		h := fnv.New64a()
		h.Write([]byte(word))
		return strings.TrimPrefix(token, hashTokenPrefix) == fmt.Sprintf("%x", h.Sum64())
	}
	return false
}

// splitCallbackData splits cleaned callback data into the button unique and its payload
func splitCallbackData(data string) (unique, payload string) {
	unique, payload, _ = strings.Cut(data, "|")
	return unique, payload
}

// parseRemoveData parses the unique of a remove button, rm_<index>
func parseRemoveData(unique string) (int, bool) {
	if !strings.HasPrefix(unique, removePrefix) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(unique, removePrefix))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// If message is not modified, the same state was rendered already
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks without a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Buttons whose Unique did not come through
	if callback.Unique == "" {
		unique, payload := splitCallbackData(data)
		callback.Unique = unique
		callback.Data = payload

		switch unique {
		case btnPlay.Unique:
			return h.handlePlay(c)
		case btnBookmark.Unique:
			return h.handleToggleBookmark(c)
		case btnToggleDefinition.Unique:
			return h.handleToggleDefinition(c)
		case btnTogglePlaySound.Unique:
			return h.handleTogglePlaySound(c)
		case btnShowSettings.Unique:
			return h.handleShowSettings(c)
		case btnShowBookmarks.Unique:
			return h.handleShowBookmarks(c)
		}

		// Dynamic buttons
		if strings.HasPrefix(unique, removePrefix) {
			index, ok := parseRemoveData(unique)
			if !ok || payload == "" {
				return c.Respond(&tele.CallbackResponse{Text: "Bookmark not found"})
			}
			return h.handleRemoveBookmark(c, index, payload)
		}
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// panelMarkup returns the keyboard of the visible panel screen
func panelMarkup(p *panel.Panel) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	if p.Screen() == domain.ScreenBookmarks {
		rows := []tele.Row{}
		for i, b := range p.Bookmarks() {
			unique := fmt.Sprintf("%s%d", removePrefix, i)
			btn := markup.Data("✖ "+b.Word, unique, wordToken(unique, b.Word))
			rows = append(rows, markup.Row(btn))
		}
		rows = append(rows, markup.Row(btnShowSettings))
		markup.Inline(rows...)
		return markup
	}

	prefs := p.Preferences()
	definition := btnToggleDefinition
	definition.Text = toggleText(panel.DefinitionToggleLabel, prefs.DefinitionEnabled)
	playSound := btnTogglePlaySound
	playSound.Text = toggleText(panel.PlaySoundToggleLabel, prefs.PlaySoundEnabled)

	markup.Inline(
		markup.Row(definition),
		markup.Row(playSound),
		markup.Row(btnShowBookmarks),
	)
	return markup
}

func toggleText(label string, enabled bool) string {
	if enabled {
		return "✅ " + label
	}
	return "⬜ " + label
}
