package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dicefit-api/internal/core"
	"dicefit-api/internal/mocks"
	"dicefit-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validTrainingRequest() models.CreateTrainingRequest {
	return models.CreateTrainingRequest{
		Name:      "Push day",
		ClientID:  3,
		StartTime: "07:00",
		EndTime:   "08:00",
		Date:      "2024-05-01",
		Exercises: []models.ExerciseAssociation{
			{ExerciseID: 1},
			{ExerciseID: 2, Sets: 5, Reps: 5, Load: 100},
		},
		Sets:  3,
		Reps:  12,
		Load:  40,
		Stats: json.RawMessage(`{"kcal":300}`),
	}
}

func TestTrainingService_CreateTraining(t *testing.T) {
	ctx := context.Background()

	t.Run("AppliesRequestLevelDefaults", func(t *testing.T) {
		repo := new(mocks.MockTrainingRepository)
		svc := NewTrainingService(repo, zerolog.Nop())

		wantRows := []models.TrainingExercise{
			{ExerciseID: 1, Sets: 3, Reps: 12, Load: 40},
			{ExerciseID: 2, Sets: 5, Reps: 5, Load: 100},
		}
		created := &models.Training{ID: 11, Name: "Push day", ClientID: 3, Exercises: wantRows}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(tr *models.Training) bool {
			return tr.Name == "Push day" && tr.ClientID == 3 && tr.Date == "2024-05-01"
		}), wantRows).Return(created, nil)

		got, err := svc.CreateTraining(ctx, validTrainingRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(11), got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Validation", func(t *testing.T) {
		cases := map[string]func(*models.CreateTrainingRequest){
			"missing name":        func(r *models.CreateTrainingRequest) { r.Name = "" },
			"missing client":      func(r *models.CreateTrainingRequest) { r.ClientID = 0 },
			"missing date":        func(r *models.CreateTrainingRequest) { r.Date = "" },
			"no exercises":        func(r *models.CreateTrainingRequest) { r.Exercises = []models.ExerciseAssociation{} },
			"exercise without id": func(r *models.CreateTrainingRequest) { r.Exercises[0].ExerciseID = 0 },
			"bad start time":      func(r *models.CreateTrainingRequest) { r.StartTime = "7am" },
			"stats not json":      func(r *models.CreateTrainingRequest) { r.Stats = json.RawMessage(`{kcal`) },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				repo := new(mocks.MockTrainingRepository)
				svc := NewTrainingService(repo, zerolog.Nop())

				req := validTrainingRequest()
				mutate(&req)
				_, err := svc.CreateTraining(ctx, req)
				assert.ErrorIs(t, err, core.ErrValidation)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("StorageFailureSurfaces", func(t *testing.T) {
		repo := new(mocks.MockTrainingRepository)
		svc := NewTrainingService(repo, zerolog.Nop())
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, core.StorageError("insert training exercise", errors.New("fk violation")))

		_, err := svc.CreateTraining(ctx, validTrainingRequest())
		assert.ErrorIs(t, err, core.ErrStorage)
	})
}

func TestTrainingService_ListTrainingsForClient(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTrainingRepository)
	svc := NewTrainingService(repo, zerolog.Nop())

	_, err := svc.ListTrainingsForClient(ctx, 0)
	assert.ErrorIs(t, err, core.ErrValidation)

	repo.On("ListByClient", ctx, int64(3)).Return([]models.TrainingWithExercises{
		{ID: 11, Exercises: []models.TrainingExerciseDetail{}},
	}, nil)
	trainings, err := svc.ListTrainingsForClient(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, trainings, 1)
}

func TestTrainingService_Updates(t *testing.T) {
	ctx := context.Background()

	t.Run("StatsNotFound", func(t *testing.T) {
		repo := new(mocks.MockTrainingRepository)
		svc := NewTrainingService(repo, zerolog.Nop())
		stats := json.RawMessage(`{"hr":140}`)
		repo.On("UpdateStats", ctx, int64(99), stats).Return(core.ErrTrainingNotFound)

		err := svc.UpdateTrainingStats(ctx, models.UpdateTrainingStatsRequest{ID: 99, Stats: stats})
		assert.ErrorIs(t, err, core.ErrTrainingNotFound)
	})

	t.Run("StatsStorageFailureIsNotSwallowed", func(t *testing.T) {
		repo := new(mocks.MockTrainingRepository)
		svc := NewTrainingService(repo, zerolog.Nop())
		repo.On("UpdateStats", ctx, int64(11), mock.Anything).
			Return(core.StorageError("update training stats", errors.New("down")))

		err := svc.UpdateTrainingStats(ctx, models.UpdateTrainingStatsRequest{ID: 11, Stats: json.RawMessage(`{}`)})
		assert.ErrorIs(t, err, core.ErrStorage)
	})

	t.Run("StatsRequired", func(t *testing.T) {
		svc := NewTrainingService(new(mocks.MockTrainingRepository), zerolog.Nop())
		err := svc.UpdateTrainingStats(ctx, models.UpdateTrainingStatsRequest{ID: 11})
		assert.ErrorIs(t, err, core.ErrValidation)
	})

	t.Run("Exercise", func(t *testing.T) {
		repo := new(mocks.MockTrainingRepository)
		svc := NewTrainingService(repo, zerolog.Nop())
		repo.On("UpdateExercise", ctx, &models.TrainingExercise{ID: 100, Sets: 5, Reps: 8, Load: 60}).Return(nil)
		repo.On("UpdateExercise", ctx, &models.TrainingExercise{ID: 42}).Return(core.ErrTrainingExerciseNotFound)

		assert.NoError(t, svc.UpdateTrainingExercise(ctx, models.UpdateTrainingExerciseRequest{ID: 100, Sets: 5, Reps: 8, Load: 60}))
		err := svc.UpdateTrainingExercise(ctx, models.UpdateTrainingExerciseRequest{ID: 42})
		assert.ErrorIs(t, err, core.ErrTrainingExerciseNotFound)
	})
}

func TestFeedbackService_AddFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("SanitizesText", func(t *testing.T) {
		repo := new(mocks.MockFeedbackRepository)
		svc := NewFeedbackService(repo)
		stored := &models.Feedback{ID: 1, UserID: 3, TrainingID: 11, Text: "Otimo treino"}
		repo.On("Add", ctx, &models.Feedback{UserID: 3, TrainingID: 11, Text: "Otimo treino"}).Return(stored, nil)

		got, err := svc.AddFeedback(ctx, models.FeedbackRequest{UserID: 3, TrainingID: 11, Text: "<i>Otimo</i> treino"})
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := NewFeedbackService(new(mocks.MockFeedbackRepository))
		_, err := svc.AddFeedback(ctx, models.FeedbackRequest{UserID: 3, Text: "ok"})
		assert.ErrorIs(t, err, core.ErrValidation)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		repo := new(mocks.MockFeedbackRepository)
		svc := NewFeedbackService(repo)
		repo.On("Add", ctx, mock.Anything).Return(nil, core.StorageError("insert feedback", errors.New("down")))

		_, err := svc.AddFeedback(ctx, models.FeedbackRequest{UserID: 3, TrainingID: 11, Text: "ok"})
		assert.ErrorIs(t, err, core.ErrStorage)
		repo.AssertNumberOfCalls(t, "Add", 1)
	})
}
