package service

import (
	"testing"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/diegoclair/report-relay-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testDestination = "-1001234567890"

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockDispatchRepo *mocks.MockDispatchRepo
	mockSource       *mocks.MockReportSource
	mockSink         *mocks.MockMessageSink
	mockRecorder     *mocks.MockRecorder
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	dispatchRepo := mocks.NewMockDispatchRepo(ctrl)
	dm.EXPECT().Dispatch().Return(dispatchRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockDispatchRepo: dispatchRepo,
		mockSource:       mocks.NewMockReportSource(ctrl),
		mockSink:         mocks.NewMockMessageSink(ctrl),
		mockRecorder:     mocks.NewMockRecorder(ctrl),
	}

	return
}

func weekdaySpec() entity.ScheduleSpec {
	return entity.ScheduleSpec{
		Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		Hour:     10,
		Minute:   0,
		Location: time.UTC,
	}
}

func testDependencies(m allMocks, clock Clock) Dependencies {
	return Dependencies{
		DataManager: m.mockDataManager,
		Source:      m.mockSource,
		Sink:        m.mockSink,
		Recorder:    m.mockRecorder,
		Logger:      zap.NewNop(),
		Clock:       clock,
		Destination: testDestination,
		Schedule:    weekdaySpec(),
		Timeout:     time.Second,
	}
}

func newTestInstance(t *testing.T, m allMocks) *Instance {
	t.Helper()

	instance, err := NewInstance(testDependencies(m, RealClock()))
	require.NoError(t, err)
	require.NotNil(t, instance)

	return instance
}
