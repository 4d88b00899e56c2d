package models

import "time"

// Feedback is an append-only post-training rating (table feedbacktreinos).
type Feedback struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"id_user"`
	TrainingID int64     `json:"id_treino"`
	Text       string    `json:"feedback"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeedbackRequest represents POST /send-rating.
type FeedbackRequest struct {
	TrainingID int64  `json:"id_treino" validate:"required,gt=0"`
	UserID     int64  `json:"id_user" validate:"required,gt=0"`
	Text       string `json:"feedback" validate:"required,max=2000"`
}
