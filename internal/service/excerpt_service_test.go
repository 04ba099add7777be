package service

import (
	"context"
	"testing"

	"notecraft-be/internal/dto"
	"notecraft-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerptServices(t *testing.T) {
	store := newMemStore()
	notes := NewNoteService(fakeFactory{store}, nil, logger.NewNop())
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	note, err := notes.Create(ctx, alice)
	require.NoError(t, err)

	services := map[string]IExcerptService{
		"starred": NewStarredService(fakeFactory{store}, nil, logger.NewNop()),
		"index":   NewIndexService(fakeFactory{store}, nil, logger.NewNop()),
	}

	for name, svc := range services {
		t.Run(name, func(t *testing.T) {
			item, err := svc.Create(ctx, alice, &dto.CreateExcerptRequest{NoteId: note.Id, Text: "  verbatim text  "})
			require.NoError(t, err)
			assert.Equal(t, "  verbatim text  ", item.Text)
			assert.Equal(t, note.Id, item.NoteId)

			_, err = svc.Create(ctx, bob, &dto.CreateExcerptRequest{NoteId: note.Id, Text: "x"})
			assert.ErrorIs(t, err, ErrNotFoundOrForbidden)

			list, err := svc.List(ctx, alice)
			require.NoError(t, err)
			assert.Len(t, list, 1)

			list, err = svc.List(ctx, bob)
			require.NoError(t, err)
			assert.Empty(t, list)

			assert.ErrorIs(t, svc.Delete(ctx, bob, item.Id), ErrNotFoundOrForbidden)
			require.NoError(t, svc.Delete(ctx, alice, item.Id))
			assert.ErrorIs(t, svc.Delete(ctx, alice, item.Id), ErrNotFoundOrForbidden)
		})
	}
}
