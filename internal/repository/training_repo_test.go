package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dicefit-api/internal/core"
	"dicefit-api/internal/models"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingRepository_Create(t *testing.T) {
	ctx := context.Background()
	training := &models.Training{
		Name:      "Push day",
		ClientID:  3,
		StartTime: "07:00",
		Date:      "2024-05-01",
		Stats:     json.RawMessage(`{"kcal":300}`),
	}
	exercises := []models.TrainingExercise{
		{ExerciseID: 1, Sets: 4, Reps: 10, Load: 50},
		{ExerciseID: 2, Sets: 3, Reps: 12, Load: 20},
	}

	t.Run("InsertsOneRowPerExercise", func(t *testing.T) {
		mock := newMock(t)
		repo := NewTrainingRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO treino ").
			WithArgs("Push day", int64(3), "07:00", nil, "2024-05-01", []byte(`{"kcal":300}`)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectQuery("INSERT INTO treino_exercicios").
			WithArgs(int64(11), int64(1), 4, 10, 50.0).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))
		mock.ExpectQuery("INSERT INTO treino_exercicios").
			WithArgs(int64(11), int64(2), 3, 12, 20.0).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(101)))
		mock.ExpectCommit()

		created, err := repo.Create(ctx, training, exercises)
		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		require.Len(t, created.Exercises, 2)
		assert.Equal(t, int64(100), created.Exercises[0].ID)
		assert.Equal(t, int64(11), created.Exercises[1].TrainingID)
		assert.Equal(t, int64(0), exercises[0].TrainingID, "input slice must not be modified")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FailingExerciseRollsBackEverything", func(t *testing.T) {
		mock := newMock(t)
		repo := NewTrainingRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO treino ").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectQuery("INSERT INTO treino_exercicios").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))
		mock.ExpectQuery("INSERT INTO treino_exercicios").
			WillReturnError(errors.New("foreign key violation"))
		mock.ExpectRollback()

		created, err := repo.Create(ctx, training, exercises)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, core.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginFailure", func(t *testing.T) {
		mock := newMock(t)
		repo := NewTrainingRepository(mock)

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		_, err := repo.Create(ctx, training, exercises)
		assert.ErrorIs(t, err, core.ErrStorage)
	})
}

var trainingCols = []string{
	"id", "nome_treino", "id_cliente", "hora_treino_inicio", "hora_treino_fim", "data_treino", "training_stats",
	"treino_exercicio_id", "exercicio_id", "nome_exercicio", "series", "repeticoes", "carga",
}

func TestTrainingRepository_ListByClient(t *testing.T) {
	ctx := context.Background()

	t.Run("NestsExercisesUnderTrainings", func(t *testing.T) {
		mock := newMock(t)
		repo := NewTrainingRepository(mock)

		mock.ExpectQuery("FROM treino t").
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(trainingCols).
				AddRow(int64(11), "Push day", int64(3), "07:00:00", "", "2024-05-01", []byte(`{"kcal":300}`),
					int64(100), int64(1), "Supino reto", 4, 10, 50.0).
				AddRow(int64(11), "Push day", int64(3), "07:00:00", "", "2024-05-01", []byte(`{"kcal":300}`),
					int64(101), int64(2), "Crucifixo", 3, 12, 20.0).
				AddRow(int64(10), "Rest", int64(3), "", "", "2024-04-30", nil,
					int64(0), int64(0), "", 0, 0, 0.0))

		trainings, err := repo.ListByClient(ctx, 3)
		require.NoError(t, err)
		require.Len(t, trainings, 2)

		assert.Equal(t, int64(11), trainings[0].ID)
		assert.JSONEq(t, `{"kcal":300}`, string(trainings[0].Stats))
		require.Len(t, trainings[0].Exercises, 2)
		assert.Equal(t, "Crucifixo", trainings[0].Exercises[1].Name)
		assert.Equal(t, int64(101), trainings[0].Exercises[1].TrainingExerciseID)

		assert.Equal(t, int64(10), trainings[1].ID)
		assert.NotNil(t, trainings[1].Exercises)
		assert.Empty(t, trainings[1].Exercises)
		assert.Nil(t, trainings[1].Stats)
	})

	t.Run("NoTrainingsIsEmpty", func(t *testing.T) {
		mock := newMock(t)
		repo := NewTrainingRepository(mock)

		mock.ExpectQuery("FROM treino t").
			WithArgs(int64(4)).
			WillReturnRows(pgxmock.NewRows(trainingCols))

		trainings, err := repo.ListByClient(ctx, 4)
		require.NoError(t, err)
		assert.Empty(t, trainings)
	})
}

func TestTrainingRepository_Updates(t *testing.T) {
	ctx := context.Background()

	t.Run("StatsMissingTraining", func(t *testing.T) {
		mock := newMock(t)
		repo := NewTrainingRepository(mock)

		mock.ExpectExec("UPDATE treino SET training_stats").
			WithArgs([]byte(`{"hr":140}`), int64(99)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateStats(ctx, 99, json.RawMessage(`{"hr":140}`))
		assert.ErrorIs(t, err, core.ErrTrainingNotFound)
	})

	t.Run("ExerciseUpdated", func(t *testing.T) {
		mock := newMock(t)
		repo := NewTrainingRepository(mock)

		mock.ExpectExec("UPDATE treino_exercicios SET").
			WithArgs(5, 8, 60.0, int64(100)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateExercise(ctx, &models.TrainingExercise{ID: 100, Sets: 5, Reps: 8, Load: 60})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ExerciseMissing", func(t *testing.T) {
		mock := newMock(t)
		repo := NewTrainingRepository(mock)

		mock.ExpectExec("UPDATE treino_exercicios SET").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateExercise(ctx, &models.TrainingExercise{ID: 42})
		assert.ErrorIs(t, err, core.ErrTrainingExerciseNotFound)
	})
}
