package handler

import (
	"context"

	"thesaurusrex/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// chatPlayer plays pronunciations by sending the audio file to the chat
type chatPlayer struct {
	sender Sender
	chat   tele.Recipient
	logger *zap.Logger
}

func (p *chatPlayer) Play(ctx context.Context, audioURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := p.sender.Send(p.chat, &tele.Audio{File: tele.FromURL(audioURL)})
	return err
}

// logEmbedder records modal size changes. Chats size messages themselves, so
// the message is only logged.
type logEmbedder struct {
	logger *zap.Logger
}

func (e *logEmbedder) PostMessage(msg domain.ResizeMessage) {
	e.logger.Debug("Modal resized",
		zap.String("type", msg.Type),
		zap.Int("width", msg.Width),
		zap.Int("height", msg.Height),
	)
}
