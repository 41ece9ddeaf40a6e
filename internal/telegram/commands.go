package telegram

import (
	"context"
	"strconv"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/command"
	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Commands answers /report, /status, /start and /help.
type Commands struct {
	router contract.TriggerRouter
	status contract.StatusService
	sink   contract.MessageSink
	logger *zap.Logger
	loc    *time.Location
}

func NewCommands(router contract.TriggerRouter, status contract.StatusService, sink contract.MessageSink, logger *zap.Logger, loc *time.Location) *Commands {
	return &Commands{
		router: router,
		status: status,
		sink:   sink,
		logger: logger.Named("telegram.commands"),
		loc:    loc,
	}
}

// Register routes every slash command text message to Handle.
func (c *Commands) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, c.Handle)
}

// Handle matches bot.HandlerFunc. The bot argument is unused; replies go through the sink.
func (c *Commands) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	msg := update.Message

	cmd, err := command.ParseCommand(msg.Text)
	if err != nil {
		c.logger.Debug("Ignoring unknown command", zap.String("text", msg.Text))
		return
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)

	switch cmd.Type {
	case command.CmdReport:
		c.handleReport(ctx, chatID, requesterHandle(msg))
	case command.CmdStatus:
		c.handleStatus(ctx, chatID)
	case command.CmdStart:
		c.reply(ctx, chatID, command.GetStartText())
	case command.CmdHelp:
		c.reply(ctx, chatID, command.GetHelpText())
	}
}

func (c *Commands) handleReport(ctx context.Context, chatID, handle string) {
	c.logger.Info("Manual report requested", zap.String("chat", chatID), zap.String("requester", handle))

	_, err := c.router.OnManualRequest(ctx, entity.Requester{Handle: handle, ReplyTo: chatID})
	if err == nil {
		return
	}

	c.reply(ctx, chatID, command.ErrorText(err))
}

func (c *Commands) handleStatus(ctx context.Context, chatID string) {
	status, err := c.status.Status(ctx)
	if err != nil {
		c.logger.Error("Failed to get status", zap.Error(err))
		c.reply(ctx, chatID, command.ErrorText(err))
		return
	}

	c.reply(ctx, chatID, command.StatusText(status, c.loc))
}

func (c *Commands) reply(ctx context.Context, chatID, text string) {
	if err := c.sink.Deliver(ctx, chatID, entity.PlainMessage(text)); err != nil {
		c.logger.Error("Failed to reply", zap.String("chat", chatID), zap.Error(err))
	}
}

func requesterHandle(msg *models.Message) string {
	if msg.From == nil {
		return "chat:" + strconv.FormatInt(msg.Chat.ID, 10)
	}
	if msg.From.Username != "" {
		return "@" + msg.From.Username
	}
	return "user:" + strconv.FormatInt(msg.From.ID, 10)
}
