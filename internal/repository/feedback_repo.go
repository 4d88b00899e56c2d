package repository

import (
	"context"

	"dicefit-api/internal/core"
	"dicefit-api/internal/database"
	"dicefit-api/internal/models"
)

type PostgresFeedbackRepository struct {
	db database.Pool
}

func NewFeedbackRepository(db database.Pool) core.FeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Add(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	stored := *feedback
	err := r.db.QueryRow(ctx, `
		INSERT INTO feedbacktreinos (id_user, id_treino, feedback)
		VALUES ($1, $2, $3) RETURNING id, created_at`,
		feedback.UserID, feedback.TrainingID, feedback.Text,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, core.StorageError("insert feedback", err)
	}
	return &stored, nil
}
