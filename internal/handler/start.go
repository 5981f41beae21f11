package handler

import (
	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/panel"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const welcomeText = "Send me any English word and I'll look up its definition.\n\n"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	ctx, cancel := requestContext()
	defer cancel()

	p := h.session(c).panel
	if err := p.SelectScreen(ctx, domain.ScreenSettings); err != nil {
		return err
	}
	p.Mount(ctx)
	return c.Send(welcomeText+p.Render(), panelMarkup(p))
}

// handleSettings handles /settings command
func (h *Handler) handleSettings(c tele.Context) error {
	return h.sendScreen(c, domain.ScreenSettings)
}

// handleBookmarks handles /bookmarks command
func (h *Handler) handleBookmarks(c tele.Context) error {
	return h.sendScreen(c, domain.ScreenBookmarks)
}

func (h *Handler) handleShowSettings(c tele.Context) error {
	return h.editScreen(c, domain.ScreenSettings)
}

func (h *Handler) handleShowBookmarks(c tele.Context) error {
	return h.editScreen(c, domain.ScreenBookmarks)
}

// handleToggleDefinition flips the display button preference
func (h *Handler) handleToggleDefinition(c tele.Context) error {
	p := h.session(c).panel
	p.ToggleDefinition()
	return h.refreshPanel(c, p)
}

// handleTogglePlaySound flips the play sound preference
func (h *Handler) handleTogglePlaySound(c tele.Context) error {
	p := h.session(c).panel
	p.TogglePlaySound()
	return h.refreshPanel(c, p)
}

// handleRemoveBookmark removes the bookmark a remove button was built for.
// index is where the word was listed; token names the word itself.
func (h *Handler) handleRemoveBookmark(c tele.Context, index int, token string) error {
	p := h.session(c).panel

	items := p.Bookmarks()
	word := ""
	if index < len(items) && tokenMatches(token, items[index].Word) {
		word = items[index].Word
	} else {
		// the list changed since the button was drawn
		for _, b := range items {
			if tokenMatches(token, b.Word) {
				word = b.Word
				break
			}
		}
	}
	if word == "" {
		return c.Respond(&tele.CallbackResponse{Text: "Bookmark not found"})
	}

	p.RemoveBookmark(word)

	h.logger.Info("Bookmark removed from panel",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("word", word),
		zap.Int("index", index),
	)
	return h.refreshPanel(c, p)
}

func (h *Handler) sendScreen(c tele.Context, screen domain.Screen) error {
	ctx, cancel := requestContext()
	defer cancel()

	p := h.session(c).panel
	if err := p.SelectScreen(ctx, screen); err != nil {
		return err
	}
	if screen == domain.ScreenSettings {
		p.Mount(ctx)
	}
	return c.Send(p.Render(), panelMarkup(p))
}

func (h *Handler) editScreen(c tele.Context, screen domain.Screen) error {
	ctx, cancel := requestContext()
	defer cancel()

	p := h.session(c).panel
	if err := p.SelectScreen(ctx, screen); err != nil {
		return err
	}
	return h.refreshPanel(c, p)
}

// refreshPanel edits the panel message in place, falling back to a new message
func (h *Handler) refreshPanel(c tele.Context, p *panel.Panel) error {
	userID := c.Sender().ID
	text := p.Render()
	markup := panelMarkup(p)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}
