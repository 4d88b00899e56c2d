package repository

import (
	"context"
	"testing"
	"time"

	"dicefit-api/internal/core"
	"dicefit-api/internal/models"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_ListPlans(t *testing.T) {
	mock := newMock(t)
	repo := NewCatalogRepository(mock)

	mock.ExpectQuery("FROM planos").
		WillReturnRows(pgxmock.NewRows([]string{"id", "nome", "descricao", "preco"}).
			AddRow(int64(1), "Basico", "Acesso a academia", 89.9).
			AddRow(int64(2), "Premium", "Acesso total", 149.9))

	plans, err := repo.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Premium", plans[1].Name)
}

func TestCatalogRepository_ListExercises(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "nome_exercicio", "tipo_exercicio"}

	t.Run("Filtered", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCatalogRepository(mock)

		mock.ExpectQuery("WHERE tipo_exercicio").
			WithArgs("Peito").
			WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(1), "Supino reto", "Peito"))

		exercises, err := repo.ListExercises(ctx, "Peito")
		require.NoError(t, err)
		assert.Equal(t, []models.Exercise{{ID: 1, Name: "Supino reto", Type: "Peito"}}, exercises)
	})

	t.Run("UnknownTypeIsEmptyNotNil", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCatalogRepository(mock)

		mock.ExpectQuery("WHERE tipo_exercicio").
			WithArgs("Yoga").
			WillReturnRows(pgxmock.NewRows(cols))

		exercises, err := repo.ListExercises(ctx, "Yoga")
		require.NoError(t, err)
		assert.NotNil(t, exercises)
		assert.Empty(t, exercises)
	})

	t.Run("Unfiltered", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCatalogRepository(mock)

		mock.ExpectQuery("SELECT id, nome_exercicio, tipo_exercicio FROM exercicios ORDER BY id").
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(int64(1), "Supino reto", "Peito").
				AddRow(int64(2), "Agachamento", "Pernas"))

		exercises, err := repo.ListExercises(ctx, "")
		require.NoError(t, err)
		assert.Len(t, exercises, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFeedbackRepository_Add(t *testing.T) {
	mock := newMock(t)
	repo := NewFeedbackRepository(mock)
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO feedbacktreinos").
		WithArgs(int64(3), int64(11), "Otimo treino").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
	mock.ExpectQuery("INSERT INTO feedbacktreinos").
		WillReturnError(assert.AnError)

	stored, err := repo.Add(context.Background(), &models.Feedback{UserID: 3, TrainingID: 11, Text: "Otimo treino"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, now, stored.CreatedAt)

	_, err = repo.Add(context.Background(), &models.Feedback{UserID: 3, TrainingID: 11, Text: "x"})
	assert.ErrorIs(t, err, core.ErrStorage)
}
