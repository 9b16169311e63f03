//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"

	"queue-engine/internal/worker"
	commandsmock "queue-engine/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCounterReconciler_Reconcile(t *testing.T) {
	testCases := []struct {
		name          string
		repaired      int
		err           error
		expectedError bool
	}{
		{name: "nothing to repair"},
		{name: "repairs drifted queues", repaired: 2},
		{name: "partial failure still reports repairs", repaired: 1, err: errors.New("queue locked"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCommands := commandsmock.NewMockQueueCommands(ctrl)
			mockCommands.EXPECT().ReconcileCounters(gomock.Any()).Return(tc.repaired, tc.err).Times(1)

			err := worker.NewCounterReconciler(mockCommands, discardLogger()).Reconcile(context.Background())

			if tc.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
