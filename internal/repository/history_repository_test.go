package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"study-assistant/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistoryRepository(t *testing.T) (HistoryRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewHistoryRepository(rdb), mr
}

func TestHistoryRepositoryEmpty(t *testing.T) {
	repo, _ := newTestHistoryRepository(t)
	got, err := repo.GetHistory(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryRepositoryAppendKeepsLatest(t *testing.T) {
	repo, mr := newTestHistoryRepository(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.AppendHistory(ctx, "s1",
			model.ChatMessage{Role: "user", Content: fmt.Sprintf("q%d", i), Timestamp: time.Now()},
			model.ChatMessage{Role: "assistant", Content: fmt.Sprintf("a%d", i), Timestamp: time.Now()},
		))
	}

	got, err := repo.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, historyMaxMessages)
	assert.Equal(t, "q5", got[0].Content)
	assert.Equal(t, "a14", got[len(got)-1].Content)

	assert.Equal(t, historyTTL, mr.TTL(historyKey("s1")))
}

func TestHistoryRepositoryCorruptData(t *testing.T) {
	repo, mr := newTestHistoryRepository(t)
	_, err := mr.Push(historyKey("s2"), "not-json")
	require.NoError(t, err)

	_, err = repo.GetHistory(context.Background(), "s2")
	assert.Error(t, err)
}

func TestHistoryRepositoryConcurrentAppends(t *testing.T) {
	repo, _ := newTestHistoryRepository(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.AppendHistory(ctx, "s1",
				model.ChatMessage{Role: "user", Content: fmt.Sprintf("q%d", i)},
				model.ChatMessage{Role: "assistant", Content: fmt.Sprintf("a%d", i)},
			)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 10)
	// 每次追加的一问一答保持相邻
	for i := 0; i < len(got); i += 2 {
		assert.Equal(t, "user", got[i].Role)
		assert.Equal(t, "assistant", got[i+1].Role)
		assert.Equal(t, "a"+got[i].Content[1:], got[i+1].Content)
	}
}

func TestHistoryRepositoryAppendNothing(t *testing.T) {
	repo, mr := newTestHistoryRepository(t)
	require.NoError(t, repo.AppendHistory(context.Background(), "s3"))
	assert.False(t, mr.Exists(historyKey("s3")))
}
