// Package slackbot adapts the relay to the Slack Web API.
package slackbot

import (
	"context"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// SlackClient is the part of *slack.Client the relay uses.
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Sink implements contract.MessageSink over chat.postMessage.
type Sink struct {
	client SlackClient
	logger *zap.Logger
}

func NewSink(client SlackClient, logger *zap.Logger) *Sink {
	return &Sink{
		client: client,
		logger: logger.Named("slack"),
	}
}

func (s *Sink) Deliver(ctx context.Context, destination string, msg entity.Message) error {
	text := msg.Text
	escape := true

	if msg.Format == entity.FormatRichText {
		converted, err := ToMrkdwn(msg.Text)
		if err != nil {
			s.logger.Warn("Falling back to plain text", zap.Error(err))
		} else {
			text = converted
			escape = false
		}
	}

	_, timestamp, err := s.client.PostMessageContext(ctx, destination, slack.MsgOptionText(text, escape))
	if err != nil {
		return &entity.DeliveryError{Destination: destination, Err: err}
	}

	s.logger.Debug("Message delivered", zap.String("channel", destination), zap.String("ts", timestamp))
	return nil
}
