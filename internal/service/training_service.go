package service

import (
	"context"
	"encoding/json"
	"fmt"

	"dicefit-api/internal/core"
	"dicefit-api/internal/metrics"
	"dicefit-api/internal/models"
	"dicefit-api/internal/validation"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("service")

type TrainingService struct {
	repo   core.TrainingRepository
	logger zerolog.Logger
}

func NewTrainingService(repo core.TrainingRepository, logger zerolog.Logger) core.TrainingService {
	return &TrainingService{
		repo:   repo,
		logger: logger.With().Str("component", "training").Logger(),
	}
}

// CreateTraining stores a training with one row per requested exercise.
// Sets, reps and load left at zero on an exercise take the request-level
// values.
func (s *TrainingService) CreateTraining(ctx context.Context, req models.CreateTrainingRequest) (*models.Training, error) {
	ctx, span := tracer.Start(ctx, "TrainingService.CreateTraining")
	defer span.End()

	req.Name = validation.SanitizeString(req.Name)
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := validStats(req.Stats, false); err != nil {
		return nil, err
	}

	rows := make([]models.TrainingExercise, 0, len(req.Exercises))
	for _, a := range req.Exercises {
		row := models.TrainingExercise{ExerciseID: a.ExerciseID, Sets: a.Sets, Reps: a.Reps, Load: a.Load}
		if row.Sets == 0 {
			row.Sets = req.Sets
		}
		if row.Reps == 0 {
			row.Reps = req.Reps
		}
		if row.Load == 0 {
			row.Load = req.Load
		}
		rows = append(rows, row)
	}

	span.SetAttributes(
		attribute.Int64("training.client_id", req.ClientID),
		attribute.Int("training.exercises", len(rows)),
	)

	created, err := s.repo.Create(ctx, &models.Training{
		Name:      req.Name,
		ClientID:  req.ClientID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Date:      req.Date,
		Stats:     req.Stats,
	}, rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create training failed")
		return nil, fmt.Errorf("create training: %w", err)
	}

	s.logger.Info().
		Int64("training_id", created.ID).
		Int64("client_id", created.ClientID).
		Int("exercises", len(created.Exercises)).
		Msg("Training created")
	metrics.TrainingsCreated.Inc()
	return created, nil
}

func (s *TrainingService) ListTrainingsForClient(ctx context.Context, clientID int64) ([]models.TrainingWithExercises, error) {
	if clientID <= 0 {
		return nil, core.Validationf("id_cliente must be a positive number")
	}
	trainings, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	return trainings, nil
}

// UpdateTrainingStats replaces the stats document of a training.
func (s *TrainingService) UpdateTrainingStats(ctx context.Context, req models.UpdateTrainingStatsRequest) error {
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	if err := validStats(req.Stats, true); err != nil {
		return err
	}
	if err := s.repo.UpdateStats(ctx, req.ID, req.Stats); err != nil {
		return fmt.Errorf("update training stats: %w", err)
	}
	return nil
}

func (s *TrainingService) UpdateTrainingExercise(ctx context.Context, req models.UpdateTrainingExerciseRequest) error {
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	err := s.repo.UpdateExercise(ctx, &models.TrainingExercise{
		ID:   req.ID,
		Sets: req.Sets,
		Reps: req.Reps,
		Load: req.Load,
	})
	if err != nil {
		return fmt.Errorf("update training exercise: %w", err)
	}
	return nil
}

func validStats(stats json.RawMessage, required bool) error {
	if len(stats) == 0 {
		if required {
			return core.Validationf("training_stats is required")
		}
		return nil
	}
	if !json.Valid(stats) {
		return core.Validationf("training_stats must be a JSON document")
	}
	return nil
}
