// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package progress_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/lamb/internal/progress"
)

func openStore(t *testing.T) (*progress.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sub", "progress.db")
	s, err := progress.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestMarkAndQuery(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	done, err := s.IsCompleted(ctx, "identity")
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, s.MarkCompleted(ctx, "identity", "run-1"))
	done, err = s.IsCompleted(ctx, "identity")
	require.NoError(t, err)
	assert.True(t, done)

	// the first completion wins
	require.NoError(t, s.MarkCompleted(ctx, "identity", "run-2"))
	list, err := s.Completed(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "identity", list[0].ChallengeID)
	assert.Equal(t, "run-1", list[0].RunID)
	assert.False(t, list[0].CompletedAt.IsZero())
}

func TestPersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	s, path := openStore(t)
	require.NoError(t, s.MarkCompleted(ctx, "kite", "r"))
	require.NoError(t, s.MarkCompleted(ctx, "true", "r"))
	require.NoError(t, s.Close())

	again, err := progress.Open(path)
	require.NoError(t, err)
	defer again.Close()

	list, err := again.Completed(ctx)
	require.NoError(t, err)
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.ChallengeID
	}
	assert.ElementsMatch(t, []string{"kite", "true"}, ids)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	require.NoError(t, s.MarkCompleted(ctx, "zero", "r"))
	require.NoError(t, s.Reset(ctx))

	list, err := s.Completed(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConcurrentMarks(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	ids := []string{"identity", "constant", "kite", "self-apply", "true", "false", "not", "and"}
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.MarkCompleted(ctx, id, "parallel"))
		}()
	}
	wg.Wait()

	list, err := s.Completed(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(ids))
}
