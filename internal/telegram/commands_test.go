package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/command"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/diegoclair/report-relay-bot/mocks"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type commandMocks struct {
	router *mocks.MockTriggerRouter
	status *mocks.MockStatusService
	sink   *mocks.MockMessageSink
}

func newCommandsTest(t *testing.T) (commandMocks, *Commands) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := commandMocks{
		router: mocks.NewMockTriggerRouter(ctrl),
		status: mocks.NewMockStatusService(ctrl),
		sink:   mocks.NewMockMessageSink(ctrl),
	}

	return m, NewCommands(m.router, m.status, m.sink, zap.NewNop(), time.UTC)
}

func textUpdate(text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   1,
			Text: text,
			Chat: models.Chat{ID: 42},
			From: &models.User{ID: 1001, Username: "alice"},
		},
	}
}

func TestCommands_Handle(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		buildMocks func(m commandMocks)
	}{
		{
			name: "Should run a manual report for the asking chat",
			text: "/report",
			buildMocks: func(m commandMocks) {
				m.router.EXPECT().
					OnManualRequest(gomock.Any(), entity.Requester{Handle: "@alice", ReplyTo: "42"}).
					Return(&entity.ReportBody{Text: "<b>ok</b>"}, nil).Times(1)
			},
		},
		{
			name: "Should accept the command addressed to the bot",
			text: "/report@AbsenceBot",
			buildMocks: func(m commandMocks) {
				m.router.EXPECT().OnManualRequest(gomock.Any(), gomock.Any()).Return(&entity.ReportBody{}, nil).Times(1)
			},
		},
		{
			name: "Should answer busy when a cycle is in flight",
			text: "/report",
			buildMocks: func(m commandMocks) {
				m.router.EXPECT().OnManualRequest(gomock.Any(), gomock.Any()).Return(nil, entity.ErrBusy).Times(1)
				m.sink.EXPECT().
					Deliver(gomock.Any(), "42", entity.PlainMessage(command.ErrorText(entity.ErrBusy))).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should relay the generator error",
			text: "/report",
			buildMocks: func(m commandMocks) {
				reportErr := &entity.ReportError{Kind: entity.ReportGenerator, Reason: "sheet not found"}
				m.router.EXPECT().OnManualRequest(gomock.Any(), gomock.Any()).Return(nil, reportErr).Times(1)
				m.sink.EXPECT().
					Deliver(gomock.Any(), "42", entity.PlainMessage("Report generation error: sheet not found")).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should reply with the start text",
			text: "/start",
			buildMocks: func(m commandMocks) {
				m.sink.EXPECT().Deliver(gomock.Any(), "42", entity.PlainMessage(command.GetStartText())).Return(nil).Times(1)
			},
		},
		{
			name: "Should reply with the help text",
			text: "/help",
			buildMocks: func(m commandMocks) {
				m.sink.EXPECT().Deliver(gomock.Any(), "42", entity.PlainMessage(command.GetHelpText())).Return(nil).Times(1)
			},
		},
		{
			name: "Should render the status",
			text: "/status",
			buildMocks: func(m commandMocks) {
				status := &entity.Status{NextFire: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)}
				m.status.EXPECT().Status(gomock.Any()).Return(status, nil).Times(1)
				m.sink.EXPECT().Deliver(gomock.Any(), "42", entity.PlainMessage(command.StatusText(status, time.UTC))).Return(nil).Times(1)
			},
		},
		{
			name: "Should report a status failure",
			text: "/status",
			buildMocks: func(m commandMocks) {
				m.status.EXPECT().Status(gomock.Any()).Return(nil, errors.New("database is locked")).Times(1)
				m.sink.EXPECT().Deliver(gomock.Any(), "42", entity.PlainMessage("Error: database is locked")).Return(nil).Times(1)
			},
		},
		{
			name:       "Should ignore unknown commands",
			text:       "/weather",
			buildMocks: func(m commandMocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, commands := newCommandsTest(t)
			tt.buildMocks(m)

			commands.Handle(context.Background(), nil, textUpdate(tt.text))
		})
	}
}

func TestCommands_HandleWithoutMessage(t *testing.T) {
	_, commands := newCommandsTest(t)

	assert.NotPanics(t, func() {
		commands.Handle(context.Background(), nil, &models.Update{})
		commands.Handle(context.Background(), nil, nil)
	})
}

func TestRequesterHandle(t *testing.T) {
	assert.Equal(t, "@alice", requesterHandle(&models.Message{From: &models.User{ID: 1, Username: "alice"}}))
	assert.Equal(t, "user:7", requesterHandle(&models.Message{From: &models.User{ID: 7}}))
	assert.Equal(t, "chat:-42", requesterHandle(&models.Message{Chat: models.Chat{ID: -42}}))
}
