package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jusunglee/baybayin/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestConversionLog(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := range 3 {
		c, err := repo.SaveConversion(ctx, db.SaveConversionParams{
			Mode:    "convert",
			Options: `{"language":"english"}`,
			Input:   fmt.Sprintf("line %d", i),
			Output:  "ᜎᜒᜈ᜔",
		})
		require.NoError(t, err)
		assert.NotZero(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
	}

	count, err := repo.CountConversions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	page, err := repo.ListConversions(ctx, db.ListConversionsParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "line 2", page[0].Input, "newest first")
	assert.Equal(t, "ᜎᜒᜈ᜔", page[0].Output)

	rest, err := repo.ListConversions(ctx, db.ListConversionsParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "line 0", rest[0].Input)
}

func TestDocumentLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc, err := repo.CreateDocument(ctx, db.CreateDocumentParams{
		Mode:    "transliterate",
		Options: "{}",
		Input:   "bata\nbahay",
	})
	require.NoError(t, err)
	assert.Equal(t, db.DocumentPending, doc.Status)
	assert.False(t, doc.Output.Valid)

	done, err := repo.UpdateDocument(ctx, db.UpdateDocumentParams{
		ID:     doc.ID,
		Status: db.DocumentDone,
		Output: sql.NullString{String: "ᜊᜆ\nᜊᜑᜌ᜔", Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, db.DocumentDone, done.Status)
	assert.Equal(t, "ᜊᜆ\nᜊᜑᜌ᜔", done.Output.String)

	got, err := repo.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, done.Output, got.Output)
	assert.Equal(t, "bata\nbahay", got.Input)
}

func TestMissingDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetDocument(ctx, 42)
	assert.True(t, db.IsNoRows(err))

	_, err = repo.UpdateDocument(ctx, db.UpdateDocumentParams{ID: 42, Status: db.DocumentFailed})
	assert.True(t, db.IsNoRows(err))
}

func TestWithTxRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.WithTx(ctx, func(tx db.Repository) error {
		_, err := tx.SaveConversion(ctx, db.SaveConversionParams{Mode: "convert", Options: "{}", Input: "a", Output: "ᜀ"})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := repo.CountConversions(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWithTxCommits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.WithTx(ctx, func(tx db.Repository) error {
		doc, err := tx.CreateDocument(ctx, db.CreateDocumentParams{Mode: "convert", Options: "{}", Input: "a"})
		if err != nil {
			return err
		}
		_, err = tx.UpdateDocument(ctx, db.UpdateDocumentParams{ID: doc.ID, Status: db.DocumentDone})
		return err
	})
	require.NoError(t, err)

	doc, err := repo.GetDocument(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, db.DocumentDone, doc.Status)
}

func TestPing(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Ping(context.Background()))
	require.NoError(t, repo.Close())
	assert.Error(t, repo.Ping(context.Background()))
}
