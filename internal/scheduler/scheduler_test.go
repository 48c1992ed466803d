package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDailyResetValidSpec(t *testing.T) {
	s := New()
	err := s.RegisterDailyReset(context.Background(), "0 0 * * *", func(context.Context) error {
		return nil
	})
	require.NoError(t, err)
}

func TestRegisterDailyResetInvalidSpec(t *testing.T) {
	s := New()
	err := s.RegisterDailyReset(context.Background(), "not a cron spec", func(context.Context) error {
		return nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "scheduler.RegisterDailyReset")
}

func TestStartStop(t *testing.T) {
	s := New()
	s.Start()
	s.Stop()
}
