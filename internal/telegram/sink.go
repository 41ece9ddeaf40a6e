// Package telegram adapts the relay to the Telegram Bot API.
package telegram

import (
	"context"
	"unicode/utf8"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// maxMessageLength is Telegram's limit for one sendMessage text, in characters.
const maxMessageLength = 4096

// Sender is the part of *bot.Bot the relay uses.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Sink implements contract.MessageSink over sendMessage.
type Sink struct {
	sender Sender
	logger *zap.Logger
}

func NewSink(sender Sender, logger *zap.Logger) *Sink {
	return &Sink{
		sender: sender,
		logger: logger.Named("telegram"),
	}
}

func (s *Sink) Deliver(ctx context.Context, destination string, msg entity.Message) error {
	params := &bot.SendMessageParams{
		ChatID: destination,
		Text:   msg.Text,
	}
	if msg.Format == entity.FormatRichText {
		params.ParseMode = models.ParseModeHTML
	}

	if n := utf8.RuneCountInString(msg.Text); n > maxMessageLength {
		s.logger.Warn("Message exceeds the Telegram limit, the API may reject it",
			zap.Int("length", n), zap.String("chat", destination))
	}

	sent, err := s.sender.SendMessage(ctx, params)
	if err != nil {
		return &entity.DeliveryError{Destination: destination, Err: err}
	}

	if sent != nil {
		s.logger.Debug("Message delivered", zap.String("chat", destination), zap.Int("message_id", sent.ID))
	}
	return nil
}
