package middleware

import (
	"context"
	"strings"

	"thesaurusrex/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Replies sent to users who are not authorized yet
const (
	PasswordPrompt   = "Hi! This dictionary is private. Send the password to continue:"
	WrongPassword    = "Wrong password"
	AccessGranted    = "✅ Access granted!\n\nSend me any English word and I'll look up its definition. Use /settings and /bookmarks to manage the bot."
	TemporaryFailure = "Something went wrong. Please try again later."
)

// AuthMiddleware creates authentication middleware. Unauthorized users can
// only send the bot password; everything else is answered with a prompt.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return nil
			}
			userID := c.Sender().ID
			ctx := context.Background()

			// Check authorization
			authorized, err := authService.IsAuthorized(ctx, userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware",
					zap.Error(err),
					zap.Int64("user_id", userID),
				)
				return c.Send(TemporaryFailure)
			}
			if authorized {
				return next(c)
			}

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: PasswordPrompt, ShowAlert: true})
			}

			text := strings.TrimSpace(c.Text())
			if text == "" || strings.HasPrefix(text, "/") {
				return c.Send(PasswordPrompt)
			}

			if !authService.CheckPassword(text) {
				return c.Send(WrongPassword)
			}

			if err := authService.AuthorizeUser(ctx, userID); err != nil {
				logger.Error("Failed to authorize user",
					zap.Error(err),
					zap.Int64("user_id", userID),
				)
				return c.Send(TemporaryFailure)
			}

			logger.Info("User authorized", zap.Int64("user_id", userID))
			return c.Send(AccessGranted)
		}
	}
}
