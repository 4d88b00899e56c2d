package service

import (
	"context"
	"fmt"

	"dicefit-api/internal/core"
	"dicefit-api/internal/models"
	"dicefit-api/internal/validation"
)

type FeedbackService struct {
	repo core.FeedbackRepository
}

func NewFeedbackService(repo core.FeedbackRepository) core.FeedbackService {
	return &FeedbackService{repo: repo}
}

// AddFeedback stores a sanitized rating. Failures are returned, never retried.
func (s *FeedbackService) AddFeedback(ctx context.Context, req models.FeedbackRequest) (*models.Feedback, error) {
	req.Text = validation.SanitizeString(req.Text)
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	stored, err := s.repo.Add(ctx, &models.Feedback{
		UserID:     req.UserID,
		TrainingID: req.TrainingID,
		Text:       req.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("add feedback: %w", err)
	}
	return stored, nil
}
