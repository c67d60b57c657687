package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
		assert.NotNil(t, c.RunE)
	}
	assert.NotNil(t, root.RunE, "bare invocation serves")
}

func TestMigrateUntilDone(t *testing.T) {
	t.Run("retries_until_store_appears", func(t *testing.T) {
		calls := 0
		ok := migrateUntilDone(context.Background(), func(context.Context) ([]string, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("dial tcp: connection refused")
			}
			return []string{"0001_init"}, nil
		}, time.Millisecond)

		assert.True(t, ok)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops_on_shutdown", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		ok := migrateUntilDone(ctx, func(context.Context) ([]string, error) {
			calls++
			cancel()
			return nil, errors.New("dial tcp: connection refused")
		}, time.Hour)

		assert.False(t, ok)
		assert.Equal(t, 1, calls)
	})
}
