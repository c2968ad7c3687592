package storage

import (
	"context"
	"testing"

	"fusion-site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryContactStore_CreateAssignsFreshIDs(t *testing.T) {
	store := NewMemoryContactStore()
	ctx := context.Background()

	req := models.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.org",
		Subject: "Hello",
		Message: "Same body twice",
	}

	first, err := store.Create(ctx, req)
	require.NoError(t, err)
	second, err := store.Create(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, req.Name, first.Name)
	assert.Equal(t, req.Message, second.Message)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.ContactMessage{first, second}, all)
}

func TestMemoryContactStore_ListAllEmpty(t *testing.T) {
	all, err := NewMemoryContactStore().ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)
}
