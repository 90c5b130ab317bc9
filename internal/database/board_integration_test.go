package database

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todoboard/internal/board"
)

func TestReconcilerOverSQLite(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	r := board.New(repo, board.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	require.NoError(t, r.Load(ctx))
	require.NoError(t, r.Load(ctx))
	view := r.View()
	require.Len(t, view, 2)
	assert.Equal(t, "doing", view[0].Name)
	assert.Equal(t, "done today", view[1].Name)

	doing, done := view[0].ID, view[1].ID
	for _, text := range []string{"A", "B", "C", "D"} {
		_, err := r.AddCard(ctx, doing, text)
		require.NoError(t, err)
	}
	col, _ := r.Column(doing)
	require.NoError(t, r.ReorderCard(ctx, doing, col.Cards[3].ID, 1))

	col, _ = r.Column(doing)
	var texts []string
	for i, c := range col.Cards {
		texts = append(texts, c.Text)
		assert.Equal(t, i, c.Order)
	}
	assert.Equal(t, []string{"A", "D", "B", "C"}, texts)

	_, err := r.MoveCard(ctx, board.MoveCardRequest{From: doing, To: done, CardID: col.Cards[0].ID})
	require.NoError(t, err)
	moved, _ := r.Column(done)
	require.Len(t, moved.Cards, 1)
	assert.Equal(t, "A", moved.Cards[0].Text)

	require.NoError(t, r.DeleteColumn(ctx, doing))
	assert.Equal(t, 1, countRows(t, repo.DB(), "cards"))
}
