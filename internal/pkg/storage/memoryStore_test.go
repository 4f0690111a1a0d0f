package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragunandhant/photo-overlay/internal/entity"
)

func TestMemoryStoreCRUD(t *testing.T) {
	store := NewMemoryStore(0)

	batch := &entity.Batch{ID: "b1", CreatedAt: time.Now()}
	store.Put(batch)

	got, ok := store.Get("b1")
	require.True(t, ok)
	assert.Equal(t, batch, got)
	assert.Equal(t, 1, store.Len())

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Delete("b1")
	_, ok = store.Get("b1")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreEviction(t *testing.T) {
	store := NewMemoryStore(50 * time.Millisecond)

	store.Put(&entity.Batch{ID: "old", CreatedAt: time.Now()})
	require.Equal(t, 1, store.Len())

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 20*time.Millisecond)
}
