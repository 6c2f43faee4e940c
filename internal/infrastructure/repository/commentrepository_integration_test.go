package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
)

func createTestComment(t *testing.T, ticketID, authorID uint, content string, internal bool) *ticket.Comment {
	t.Helper()
	c, err := ticket.NewComment(ticketID, authorID, content, internal)
	require.NoError(t, err)
	return c
}

func TestCommentRepository_SaveAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCommentRepository(database)
	ctx := context.Background()

	t.Run("save assigns an ID", func(t *testing.T) {
		c := createTestComment(t, 1, 2, "Have you tried rebooting?", false)

		err := repo.Save(ctx, c)
		assert.NoError(t, err)
		assert.NotZero(t, c.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		c := createTestComment(t, 1, 2, "Escalating to network team", true)
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.GetByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, c.Content(), found.Content())
		assert.True(t, found.IsInternal())
		assert.Equal(t, uint(1), found.TicketID())
		assert.Equal(t, uint(2), found.AuthorID())
	})

	t.Run("missing comment returns error", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.Error(t, err)
	})
}

func TestCommentRepository_GetByTicketID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCommentRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestComment(t, 7, 1, "Public reply", false)))
	require.NoError(t, repo.Save(ctx, createTestComment(t, 7, 2, "Internal note", true)))
	require.NoError(t, repo.Save(ctx, createTestComment(t, 8, 1, "Other ticket", false)))

	t.Run("staff see internal comments", func(t *testing.T) {
		comments, err := repo.GetByTicketID(ctx, 7, true)
		require.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("end users only see public comments", func(t *testing.T) {
		comments, err := repo.GetByTicketID(ctx, 7, false)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Public reply", comments[0].Content())
	})
}

func TestCommentRepository_Votes(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCommentRepository(database)
	ctx := context.Background()

	c := createTestComment(t, 3, 1, "Helpful answer", false)
	require.NoError(t, repo.Save(ctx, c))

	require.NoError(t, c.ApplyVote(10, vo.VoteUp))
	require.NoError(t, c.ApplyVote(11, vo.VoteDown))
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.True(t, found.HasUpvoted(10))
	assert.True(t, found.HasDownvoted(11))
	assert.Zero(t, found.VoteCount())
}

func TestCommentRepository_DeleteByTicketID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCommentRepository(database)
	ctx := context.Background()

	c1 := createTestComment(t, 5, 1, "First", false)
	c2 := createTestComment(t, 5, 2, "Second", false)
	require.NoError(t, repo.Save(ctx, c1))
	require.NoError(t, repo.Save(ctx, c2))
	require.NoError(t, c1.ApplyVote(4, vo.VoteUp))
	require.NoError(t, repo.Update(ctx, c1))

	require.NoError(t, repo.DeleteByTicketID(ctx, 5))

	comments, err := repo.GetByTicketID(ctx, 5, true)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
