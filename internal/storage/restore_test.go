package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("returns saved state", func(t *testing.T) {
		log, hook := test.NewNullLogger()
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, sampleState(3)))

		state := Restore(ctx, store, log)
		assert.Len(t, state.Books, 3)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	})

	t.Run("missing state starts empty", func(t *testing.T) {
		log, hook := test.NewNullLogger()

		state := Restore(ctx, NewMemoryStore(), log)
		require.NotNil(t, state)
		assert.Empty(t, state.Books)
		assert.Empty(t, state.CheckedOut)
		assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	})

	t.Run("corrupt file starts empty with a warning", func(t *testing.T) {
		log, hook := test.NewNullLogger()
		path := filepath.Join(t.TempDir(), "inventory.dat")
		require.NoError(t, os.WriteFile(path, []byte("!!!"), 0600))
		store, err := NewFileStore(path)
		require.NoError(t, err)

		state := Restore(ctx, store, log)
		require.NotNil(t, state)
		assert.Empty(t, state.Books)
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})
}
