package resultcache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt/tracklens/pkg/descriptor"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func videoRec(id, group string) *descriptor.Record {
	return &descriptor.Record{
		ID:       id,
		Category: descriptor.CategoryVideo,
		Group:    group,
		Size:     "1.4 GiB",
		Video:    &descriptor.VideoInfo{Format: "Blu-ray", Container: "MKV"},
	}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	want := videoRec("101", "Cowboy Bebop")
	require.NoError(t, store.Put(ctx, want))

	got, err := store.Get(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PutOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := videoRec("101", "Cowboy Bebop")
	require.NoError(t, store.Put(ctx, first))

	second := videoRec("101", "Cowboy Bebop")
	second.Size = "2.0 GiB"
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, "2.0 GiB", got.Size, "last write wins")

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_Titles(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutAll(ctx, []*descriptor.Record{
		videoRec("1", "Cowboy Bebop"),
		videoRec("2", "Cowboy Bebop"),
		videoRec("3", "Akira"),
		videoRec("4", ""),
	}))

	titles, err := store.Titles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Akira", "Cowboy Bebop"}, titles, "distinct, sorted, empties dropped")
}

func TestStore_LookupTitle(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutAll(ctx, []*descriptor.Record{
		videoRec("1", "Cowboy Bebop"),
		videoRec("2", "Cowboy Bebop"),
		videoRec("3", "Akira"),
	}))

	title, recs, err := store.LookupTitle(ctx, "cowboy bebop")
	require.NoError(t, err)
	assert.Equal(t, "Cowboy Bebop", title)
	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "2", recs[1].ID)
}

func TestStore_LookupTitleBelowThreshold(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, videoRec("1", "Cowboy Bebop")))

	_, _, err := store.LookupTitle(ctx, "completely unrelated query")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_LookupTitleEmptyCache(t *testing.T) {
	store := openTestStore(t)

	_, _, err := store.LookupTitle(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNotFound)
}
