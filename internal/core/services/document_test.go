package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cramhead/http-client/internal/adapters/driven/storage/memory"
	"github.com/cramhead/http-client/internal/core/domain"
)

func TestNewDocumentSyncService(t *testing.T) {
	docStore := memory.NewDocumentStore()

	svc := NewDocumentSyncService(docStore)
	require.NotNil(t, svc)
}

func TestDocumentSyncService_Open(t *testing.T) {
	docStore := memory.NewDocumentStore()
	svc := NewDocumentSyncService(docStore)
	ctx := context.Background()

	err := svc.Open(ctx, "file:///project/requests.http", "GET http://example.com/api", 1)
	require.NoError(t, err)

	doc, err := docStore.Get(ctx, "file:///project/requests.http")
	require.NoError(t, err)
	assert.Equal(t, "GET http://example.com/api", doc.Text)
	assert.Equal(t, int32(1), doc.Version)
}

func TestDocumentSyncService_Update(t *testing.T) {
	docStore := memory.NewDocumentStore()
	svc := NewDocumentSyncService(docStore)
	ctx := context.Background()

	err := svc.Open(ctx, "file:///a.http", "GET http://example.com/v1", 1)
	require.NoError(t, err)

	err = svc.Update(ctx, "file:///a.http", "GET http://example.com/v2", 2)
	require.NoError(t, err)

	// The update replaces the whole text
	doc, err := docStore.Get(ctx, "file:///a.http")
	require.NoError(t, err)
	assert.Equal(t, "GET http://example.com/v2", doc.Text)
	assert.Equal(t, int32(2), doc.Version)
}

func TestDocumentSyncService_Update_WithoutOpen(t *testing.T) {
	docStore := memory.NewDocumentStore()
	svc := NewDocumentSyncService(docStore)
	ctx := context.Background()

	// A change notification for a document the server never saw opened
	// still lands in the store
	err := svc.Update(ctx, "file:///never-opened.http", "POST http://example.com", 5)
	require.NoError(t, err)

	doc, err := docStore.Get(ctx, "file:///never-opened.http")
	require.NoError(t, err)
	assert.Equal(t, "POST http://example.com", doc.Text)
}

func TestDocumentSyncService_Close(t *testing.T) {
	docStore := memory.NewDocumentStore()
	svc := NewDocumentSyncService(docStore)
	ctx := context.Background()

	err := svc.Open(ctx, "file:///a.http", "GET http://example.com", 1)
	require.NoError(t, err)

	err = svc.Close(ctx, "file:///a.http")
	require.NoError(t, err)

	_, err = docStore.Get(ctx, "file:///a.http")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentSyncService_Close_UnknownURI(t *testing.T) {
	docStore := memory.NewDocumentStore()
	svc := NewDocumentSyncService(docStore)
	ctx := context.Background()

	err := svc.Close(ctx, "file:///nonexistent.http")
	assert.NoError(t, err)
}

func TestDocumentSyncService_ReadYourWrites(t *testing.T) {
	docStore := memory.NewDocumentStore()
	svc := NewDocumentSyncService(docStore)
	ctx := context.Background()

	// A sequence of updates: the store must always serve the latest
	for i := 1; i <= 5; i++ {
		text := "GET http://example.com/v" + string(rune('0'+i))
		require.NoError(t, svc.Update(ctx, "file:///a.http", text, int32(i)))

		doc, err := docStore.Get(ctx, "file:///a.http")
		require.NoError(t, err)
		assert.Equal(t, text, doc.Text)
	}
}
