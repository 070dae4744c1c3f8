package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/location_directory/internal/events/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWorker создает Worker с мок-инвалидатором; Redis-клиент не нужен,
// пока очередь не опрашивается
func newTestWorker(t *testing.T) (*Worker, *mocks.MockInvalidator) {
	ctrl := gomock.NewController(t)
	invalidatorMock := mocks.NewMockInvalidator(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewWorker(nil, invalidatorMock, logger), invalidatorMock
}

func TestHandleEvent_InvalidatesLocation(t *testing.T) {
	worker, invalidatorMock := newTestWorker(t)
	ctx := context.Background()

	event := ChangeEvent{
		EventID:    uuid.New(),
		LocationID: 42,
		Action:     ActionUpdate,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	invalidatorMock.EXPECT().
		InvalidateLocation(gomock.Any(), int64(42)).
		Return(nil).
		Times(1)

	worker.handleEvent(ctx, string(payload))
}

func TestHandleEvent_MalformedPayloadSkipped(t *testing.T) {
	worker, invalidatorMock := newTestWorker(t)

	invalidatorMock.EXPECT().
		InvalidateLocation(gomock.Any(), gomock.Any()).
		Times(0)

	worker.handleEvent(context.Background(), `{"location_id": "not-a-number"`)
}

func TestHandleEvent_MissingLocationIDSkipped(t *testing.T) {
	worker, invalidatorMock := newTestWorker(t)

	invalidatorMock.EXPECT().
		InvalidateLocation(gomock.Any(), gomock.Any()).
		Times(0)

	worker.handleEvent(context.Background(), `{"action":"delete"}`)
}

func TestHandleEvent_InvalidatorErrorDoesNotPanic(t *testing.T) {
	worker, invalidatorMock := newTestWorker(t)

	event := ChangeEvent{EventID: uuid.New(), LocationID: 7, Action: ActionDelete}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	invalidatorMock.EXPECT().
		InvalidateLocation(gomock.Any(), int64(7)).
		Return(errors.New("redis down")).
		Times(1)

	worker.handleEvent(context.Background(), string(payload))
}
