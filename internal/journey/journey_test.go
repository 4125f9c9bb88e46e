package journey

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkCompletedIdempotent(t *testing.T) {
	st := NewState()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	st.MarkCompleted("gem1", "MAPA-2026-03-001", at)
	st.MarkCompleted("gem1", "MAPA-2026-03-002", at.Add(time.Hour))

	assert.Equal(t, []string{"gem1"}, st.CompletedGems)
	assert.Equal(t, "MAPA-2026-03-002", st.GemOutputs["gem1"].Output)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "journey.json")
	fs := NewFileStore(path, nil)

	st, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.CurrentGem)
	assert.Empty(t, st.CompletedGems)

	now := time.Now().UTC()
	st.CurrentGem = "gem2"
	st.StartedAt = &now
	st.MarkCompleted("gem1", "MAPA-2026-03-001", now)
	st.SetConversation("gem1", []Message{
		{Role: RoleSystem, Content: "instructions"},
		{Role: RoleUser, Content: "olá"},
		{Role: RoleAssistant, Content: "MAPA-2026-03-001"},
	})
	require.NoError(t, fs.Save(ctx, st))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gem2", got.CurrentGem)
	assert.Equal(t, []string{"gem1"}, got.CompletedGems)
	assert.Equal(t, "MAPA-2026-03-001", got.GemOutputs["gem1"].Output)
	assert.Len(t, got.Conversation("gem1"), 3)
	assert.NotNil(t, got.StartedAt)
	assert.False(t, got.LastUpdated.IsZero())
}

func TestFileStoreCorruptStateStartsFresh(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "journey.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fs := NewFileStore(path, nil)
	st, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.CurrentGem)

	// The broken file is set aside, not destroyed.
	_, err = os.Stat(path + ".corrupt")
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreBackup(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journey.json")
	fs := NewFileStore(path, nil)

	// Backup with no state is a no-op.
	require.NoError(t, fs.Backup(ctx))
	_, err := os.Stat(path + ".backup")
	assert.True(t, os.IsNotExist(err))

	st := NewState()
	st.CurrentGem = "gem3"
	require.NoError(t, fs.Save(ctx, st))
	require.NoError(t, fs.Backup(ctx))

	backup := NewFileStore(path+".backup", nil)
	got, err := backup.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gem3", got.CurrentGem)
}

func redisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "gemflow-test")
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	rs := redisStore(t)

	st, err := rs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.CurrentGem)

	st.CurrentGem = "gem1"
	st.MarkCompleted("gem1", "MAPA-2026-03-001", time.Now().UTC())
	require.NoError(t, rs.Save(ctx, st))

	got, err := rs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gem1", got.CurrentGem)
	assert.True(t, got.IsCompleted("gem1"))
}

func TestRedisStoreBackup(t *testing.T) {
	ctx := context.Background()
	rs := redisStore(t)

	// Backup with no state is a no-op.
	require.NoError(t, rs.Backup(ctx))

	st := NewState()
	st.CurrentGem = "gem5"
	require.NoError(t, rs.Save(ctx, st))
	require.NoError(t, rs.Backup(ctx))

	data, err := rs.client.Get(ctx, rs.backupKey()).Result()
	require.NoError(t, err)
	assert.Contains(t, data, "gem5")
}
