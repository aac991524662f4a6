package service

import (
	"context"
	"errors"
	"testing"

	"talentops/internal/database"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService(t *testing.T) {
	var pingErr error
	s := NewHealthService(&database.Repositories{Pinger: pingerFunc(func(context.Context) error { return pingErr })})

	assert.True(t, s.IsLive())
	assert.ErrorIs(t, s.Readiness(context.Background()), ErrNotStarted)
	assert.False(t, s.IsReady(context.Background()))

	s.SetReady(true)
	assert.NoError(t, s.Readiness(context.Background()))
	assert.True(t, s.IsReady(context.Background()))

	pingErr = errors.New("no reachable servers")
	err := s.Readiness(context.Background())
	assert.ErrorIs(t, err, pingErr)
	assert.EqualError(t, err, "storage ping: no reachable servers")

	s.SetReady(false)
	assert.ErrorIs(t, s.Readiness(context.Background()), ErrNotStarted)
}

func TestHealthService_WithoutPinger(t *testing.T) {
	s := NewHealthService(&database.Repositories{})
	s.SetReady(true)
	assert.True(t, s.IsReady(context.Background()))
}

func TestHealthService_PingDeadline(t *testing.T) {
	s := NewHealthService(&database.Repositories{Pinger: pingerFunc(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.False(t, deadline.IsZero())
		return nil
	})})
	s.SetReady(true)
	assert.NoError(t, s.Readiness(context.Background()))
}
