package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/command"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/diegoclair/report-relay-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type args struct {
	command   string
	text      string
	channelID string
	userID    string
}

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)

	return response
}

func TestSlackHandler_HandleSlashCommand_Report(t *testing.T) {
	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should acknowledge and run the report for the channel",
			args: args{command: "/report", channelID: "C123456789", userID: "U987654321"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RouterMock.EXPECT().
					OnManualRequest(gomock.Any(), entity.Requester{Handle: "@test-user", ReplyTo: args.channelID}).
					Return(&entity.ReportBody{Text: "<b>ok</b>"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Generating report")
			},
		},
		{
			name: "Should treat the report verb like an empty command",
			args: args{command: "/relay", text: "report", channelID: "C123456789", userID: "U987654321"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RouterMock.EXPECT().OnManualRequest(gomock.Any(), gomock.Any()).Return(&entity.ReportBody{}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Contains(t, decodeMsg(t, resp).Text, "Generating report")
			},
		},
		{
			name: "Should post busy to the channel",
			args: args{command: "/report", channelID: "C123456789", userID: "U987654321"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RouterMock.EXPECT().OnManualRequest(gomock.Any(), gomock.Any()).Return(nil, entity.ErrBusy).Times(1)
				m.SinkMock.EXPECT().
					Deliver(gomock.Any(), args.channelID, entity.PlainMessage(command.ErrorText(entity.ErrBusy))).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Contains(t, decodeMsg(t, resp).Text, "Generating report")
			},
		},
		{
			name: "Should post the delivery error to the channel",
			args: args{command: "/report", channelID: "C123456789", userID: "U987654321"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				deliveryErr := &entity.DeliveryError{Destination: args.channelID, Err: errors.New("not_in_channel")}
				m.RouterMock.EXPECT().OnManualRequest(gomock.Any(), gomock.Any()).Return(nil, deliveryErr).Times(1)
				m.SinkMock.EXPECT().
					Deliver(gomock.Any(), args.channelID, entity.PlainMessage("Error: could not send the report: not_in_channel")).
					Return(errors.New("not_in_channel")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(context.Background(), m, tt.args)

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, tt.args.channelID, "test-channel", tt.args.userID, "T123456789", test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)
			handler.Wait()

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Status(t *testing.T) {
	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should show the next fire time",
			args: args{command: "/relay", text: "status", channelID: "C123456789", userID: "U987654321"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.StatusMock.EXPECT().Status(gomock.Any()).Return(&entity.Status{
					NextFire: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
				}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Next report: Mon 04.03.2024 10:00 UTC")
				assert.Contains(t, response.Text, "No reports sent yet.")
			},
		},
		{
			name: "Should accept a dedicated status command",
			args: args{command: "/status", channelID: "C123456789", userID: "U987654321"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.StatusMock.EXPECT().Status(gomock.Any()).Return(&entity.Status{InFlight: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "A report is being prepared right now.")
			},
		},
		{
			name: "Should return an error when the ledger fails",
			args: args{command: "/relay", text: "status", channelID: "C123456789", userID: "U987654321"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.StatusMock.EXPECT().Status(gomock.Any()).Return(nil, errors.New("database is locked")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error: database is locked", response.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(context.Background(), m, tt.args)

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text, tt.args.channelID, "test-channel", tt.args.userID, "T123456789", test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)

			tt.checkResponse(t, recorder)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := test.CreateTestRecorder()
	req := test.CreateSlackRequest(t, "/relay", "help", "C123456789", "test-channel", "U987654321", "T123456789", test.SigningSecret)

	handler.HandleSlashCommand(recorder, req)

	response := decodeMsg(t, recorder)
	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Equal(t, command.GetHelpText(), response.Text)
}

func TestSlackHandler_HandleSlashCommand_Unknown(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := test.CreateTestRecorder()
	req := test.CreateSlackRequest(t, "/relay", "weather", "C123456789", "test-channel", "U987654321", "T123456789", test.SigningSecret)

	handler.HandleSlashCommand(recorder, req)

	response := decodeMsg(t, recorder)
	assert.Equal(t, "❌ unknown command: weather", response.Text)
}

func TestSlackHandler_HandleSlashCommand_Signature(t *testing.T) {
	t.Run("Should reject a request signed with another secret", func(t *testing.T) {
		_, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		recorder := test.CreateTestRecorder()
		req := test.CreateSlackRequest(t, "/report", "", "C123456789", "test-channel", "U987654321", "T123456789", "wrong-secret")

		handler.HandleSlashCommand(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Should reject an unsigned request", func(t *testing.T) {
		_, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		recorder := test.CreateTestRecorder()
		req := test.CreateSlackRequest(t, "/report", "", "C123456789", "test-channel", "U987654321", "T123456789", test.SigningSecret)
		req.Header.Del("X-Slack-Signature")
		req.Header.Del("X-Slack-Request-Timestamp")

		handler.HandleSlashCommand(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
