package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/command"
	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	router        contract.TriggerRouter
	status        contract.StatusService
	sink          contract.MessageSink
	signingSecret string
	logger        *zap.Logger
	loc           *time.Location

	// reports tracks cycles started after the slash command was acknowledged
	reports sync.WaitGroup
}

func New(router contract.TriggerRouter, status contract.StatusService, sink contract.MessageSink, signingSecret string, logger *zap.Logger, loc *time.Location) *SlackHandler {
	return &SlackHandler{
		router:        router,
		status:        status,
		sink:          sink,
		signingSecret: signingSecret,
		logger:        logger.Named("slack.handler"),
		loc:           loc,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.logger.Warn("Rejected slash command with an invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := parseSlashCommand(&s)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Wait blocks until every report started by a slash command has finished.
func (h *SlackHandler) Wait() {
	h.reports.Wait()
}

// parseSlashCommand lets "/relay status" and a dedicated "/status" command
// behave the same. Anything without a recognizable verb asks for a report.
func parseSlashCommand(s *slack.SlashCommand) (*command.Command, error) {
	if strings.TrimSpace(s.Text) != "" {
		return command.ParseCommand(s.Text)
	}
	if cmd, err := command.ParseCommand(s.Command); err == nil {
		return cmd, nil
	}
	return command.ParseCommand("")
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *command.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case command.CmdReport:
		return h.handleReport(ctx, slashCmd)
	case command.CmdStatus:
		return h.handleStatus(ctx)
	case command.CmdStart:
		return h.ephemeral(command.GetStartText())
	case command.CmdHelp:
		return h.ephemeral(command.GetHelpText())
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// handleReport acknowledges at once; Slack drops slash commands not answered
// within 3 seconds. The report or the error is posted to the channel later.
func (h *SlackHandler) handleReport(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	requester := entity.Requester{
		Handle:  "@" + slashCmd.UserName,
		ReplyTo: slashCmd.ChannelID,
	}
	cycleCtx := context.WithoutCancel(ctx)

	h.reports.Add(1)
	go func() {
		defer h.reports.Done()

		if _, err := h.router.OnManualRequest(cycleCtx, requester); err != nil {
			h.replyError(cycleCtx, requester.ReplyTo, err)
		}
	}()

	return h.ephemeral("⏳ Generating report...")
}

func (h *SlackHandler) handleStatus(ctx context.Context) *slack.Msg {
	status, err := h.status.Status(ctx)
	if err != nil {
		h.logger.Error("Failed to get status", zap.Error(err))
		return h.createErrorResponse(command.ErrorText(err))
	}

	return h.ephemeral(command.StatusText(status, h.loc))
}

func (h *SlackHandler) replyError(ctx context.Context, channelID string, err error) {
	if sendErr := h.sink.Deliver(ctx, channelID, entity.PlainMessage(command.ErrorText(err))); sendErr != nil {
		h.logger.Error("Failed to post error reply", zap.String("channel", channelID), zap.Error(sendErr))
	}
}

func (h *SlackHandler) ephemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
