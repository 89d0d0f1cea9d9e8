package implementation

import (
	"context"
	"os"
	"testing"

	"exam-variation-be/internal/entity"
	"exam-variation-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepository_Postgres(t *testing.T) {
	if err := godotenv.Load("../../../.env"); err != nil {
		t.Log("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)

	repo, err := NewQuestionRepository(db)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("SaveAll replaces the table", func(t *testing.T) {
		_, err := repo.SaveAll(ctx, []string{"old one", "old two", "old three"})
		require.NoError(t, err)

		saved, err := repo.SaveAll(ctx, []string{"1. What is an acid?", "2. Explain buffers."})
		require.NoError(t, err)
		assert.Len(t, saved, 2)

		questions, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, &entity.Question{Id: 1, OriginalText: "1. What is an acid?"}, questions[0])
		assert.Equal(t, &entity.Question{Id: 2, OriginalText: "2. Explain buffers."}, questions[1])
	})

	t.Run("FindById", func(t *testing.T) {
		q, err := repo.FindById(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "2. Explain buffers.", q.OriginalText)

		_, err = repo.FindById(ctx, 99)
		assert.ErrorIs(t, err, entity.ErrQuestionNotFound)
	})

	t.Run("SaveAll with no questions", func(t *testing.T) {
		_, err := repo.SaveAll(ctx, nil)
		require.NoError(t, err)

		questions, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, questions)
	})
}
