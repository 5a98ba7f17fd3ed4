package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatecrm/backend/internal/services/lifecycle"
)

func TestShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := lifecycle.New(time.Second, nil)

	var order []string
	m.Register("store", func(ctx context.Context) error {
		order = append(order, "store")
		return nil
	})
	m.Register("server", func(ctx context.Context) error {
		order = append(order, "server")
		return nil
	})

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, []string{"server", "store"}, order)
}

func TestShutdownContinuesPastFailures(t *testing.T) {
	m := lifecycle.New(time.Second, nil)

	failure := errors.New("flush failed")
	var storeClosed bool
	m.Register("store", func(ctx context.Context) error {
		storeClosed = true
		return nil
	})
	m.Register("server", func(ctx context.Context) error {
		return failure
	})

	err := m.Shutdown(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.True(t, storeClosed)
}

func TestShutdownAppliesTimeout(t *testing.T) {
	m := lifecycle.New(50*time.Millisecond, nil)

	m.Register("slow", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	err := m.Shutdown(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRegisterIgnoresNilHook(t *testing.T) {
	m := lifecycle.New(time.Second, nil)
	m.Register("noop", nil)
	assert.NoError(t, m.Shutdown(context.Background()))
}
