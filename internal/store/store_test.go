// ABOUTME: Tests for the record store over the in-memory KV backend
// ABOUTME: Covers round-trips, fail-open reads and collection ordering
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniromante/oniromante/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(NewMemoryKV())
}

func TestStore_StatusRoundTrip(t *testing.T) {
	s := newTestStore(t)

	status := &models.UserStatus{
		Date:       "2026-08-27",
		Mood:       models.MoodGood,
		Sleep:      models.SleepFair,
		SleepNotes: "sonhei com o mar",
	}
	require.NoError(t, s.PutStatus(status))

	got := s.GetStatus("2026-08-27")
	assert.Equal(t, status, got)
}

func TestStore_StatusDefaultsWhenAbsent(t *testing.T) {
	s := newTestStore(t)

	got := s.GetStatus("2026-08-27")
	require.NotNil(t, got)
	assert.Equal(t, "2026-08-27", got.Date)
	assert.Empty(t, got.Mood)
	assert.Empty(t, got.Sleep)
}

func TestStore_CorruptRecordFailsOpen(t *testing.T) {
	kv := NewMemoryKV()
	s := New(kv)

	require.NoError(t, kv.Set(StatusKey("2026-08-27"), []byte("{not json")))
	require.NoError(t, kv.Set(InsightsKey("2026-08-27"), []byte("]]")))
	require.NoError(t, kv.Set(LucidKey("2026-08-27"), []byte("????")))
	require.NoError(t, kv.Set(DreamsKey(), []byte("not a list")))

	status := s.GetStatus("2026-08-27")
	require.NotNil(t, status)
	assert.Empty(t, status.Mood)

	assert.Nil(t, s.GetInsights("2026-08-27"))

	lucid := s.GetLucid("2026-08-27")
	require.NotNil(t, lucid)
	assert.Zero(t, lucid.RealityChecks)

	assert.Empty(t, s.ListDreams())
}

func TestStore_InsightsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	assert.Nil(t, s.GetInsights("2026-08-27"))

	insights := &models.DailyInsights{
		Motivation:  "Confie no fluxo dos sonhos.",
		LuckyNumber: 7,
		LuckyColor:  "índigo",
		WordOfDay:   "oniromancia",
		WordMeaning: "a arte de interpretar sonhos",
	}
	require.NoError(t, s.PutInsights("2026-08-27", insights))
	assert.Equal(t, insights, s.GetInsights("2026-08-27"))
	assert.Nil(t, s.GetInsights("2026-08-28"), "next day starts uncached")
}

func TestStore_LucidRoundTrip(t *testing.T) {
	s := newTestStore(t)

	progress := s.GetLucid("2026-08-27")
	progress.AddRealityCheck()
	progress.DidMeditate = true
	require.NoError(t, s.PutLucid(progress))

	got := s.GetLucid("2026-08-27")
	assert.Equal(t, 1, got.RealityChecks)
	assert.True(t, got.DidMeditate)
	assert.False(t, got.DidJournal)

	// day boundary: new date key yields a fresh zero record
	fresh := s.GetLucid("2026-08-28")
	assert.Zero(t, fresh.RealityChecks)
	assert.False(t, fresh.DidMeditate)
}

func TestStore_SaveDreamPrependsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first := &models.DreamEntry{ID: "dream_1", Date: "2026-08-25", Title: "Primeiro"}
	second := &models.DreamEntry{ID: "dream_2", Date: "2026-08-26", Title: "Segundo"}
	require.NoError(t, s.SaveDream(first))
	require.NoError(t, s.SaveDream(second))

	dreams := s.ListDreams()
	require.Len(t, dreams, 2)
	assert.Equal(t, "dream_2", dreams[0].ID)
	assert.Equal(t, "dream_1", dreams[1].ID)
}

func TestStore_DeleteDream(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveDream(&models.DreamEntry{ID: "dream_1", Title: "A"}))
	require.NoError(t, s.SaveDream(&models.DreamEntry{ID: "dream_2", Title: "B"}))

	require.NoError(t, s.DeleteDream("dream_1"))
	dreams := s.ListDreams()
	require.Len(t, dreams, 1)
	assert.Equal(t, "dream_2", dreams[0].ID)

	// unknown id is a no-op
	require.NoError(t, s.DeleteDream("dream_missing"))
	assert.Len(t, s.ListDreams(), 1)
}

func TestStore_FindDream(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveDream(&models.DreamEntry{ID: "dream_1", Title: "A"}))

	found := s.FindDream("dream_1")
	require.NotNil(t, found)
	assert.Equal(t, "A", found.Title)
	assert.Nil(t, s.FindDream("dream_2"))
}
