// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/repositories/snapshot"
	snapshotmock "github.com/KirkDiggler/heroquest-tracker/internal/repositories/snapshot/mock"
)

// ExpectLoadRoster makes the next Load of key return roster
func ExpectLoadRoster(mockRepo *snapshotmock.MockRepository, key string, roster *entities.Roster) {
	mockRepo.EXPECT().
		Load(gomock.Any(), snapshot.LoadInput{Key: key}).
		Return(&snapshot.LoadOutput{State: roster, Found: roster != nil}, nil)
}

// CaptureSaves accepts any number of Saves of key and sends each saved
// roster on the returned channel. The channel holds up to buffer rosters;
// further saves block until the test reads.
func CaptureSaves(mockRepo *snapshotmock.MockRepository, key string, buffer int) chan *entities.Roster {
	saved := make(chan *entities.Roster, buffer)
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input snapshot.SaveInput) (*snapshot.SaveOutput, error) {
			if input.Key == key {
				saved <- input.State
			}
			return &snapshot.SaveOutput{}, nil
		}).
		AnyTimes()
	return saved
}
