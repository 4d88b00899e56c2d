package models

import "encoding/json"

// Training is a training session owned by a client (table treino).
type Training struct {
	ID        int64           `json:"id"`
	Name      string          `json:"nome_treino"`
	ClientID  int64           `json:"id_cliente"`
	StartTime string          `json:"hora_treino_inicio,omitempty"`
	EndTime   string          `json:"hora_treino_fim,omitempty"`
	Date      string          `json:"data_treino"`
	Stats     json.RawMessage `json:"training_stats,omitempty"`

	// Exercises is filled on creation with the inserted association rows.
	Exercises []TrainingExercise `json:"exercicios,omitempty"`
}

// TrainingExercise associates a catalog exercise with a training (table treino_exercicios).
type TrainingExercise struct {
	ID         int64   `json:"id"`
	TrainingID int64   `json:"id_treino"`
	ExerciseID int64   `json:"id_exercicio"`
	Sets       int     `json:"series"`
	Reps       int     `json:"repeticoes"`
	Load       float64 `json:"carga"`
}

// TrainingExerciseDetail is an association joined with its catalog exercise.
type TrainingExerciseDetail struct {
	TrainingExerciseID int64   `json:"treino_exercicio_id"`
	ExerciseID         int64   `json:"exercicio_id"`
	Name               string  `json:"name"`
	Sets               int     `json:"series"`
	Reps               int     `json:"repeticoes"`
	Load               float64 `json:"carga"`
}

// TrainingWithExercises is the read model returned when listing a client's trainings.
type TrainingWithExercises struct {
	ID        int64                    `json:"id"`
	Name      string                   `json:"nome_treino"`
	ClientID  int64                    `json:"id_cliente"`
	StartTime string                   `json:"hora_treino_inicio,omitempty"`
	EndTime   string                   `json:"hora_treino_fim,omitempty"`
	Date      string                   `json:"data_treino"`
	Stats     json.RawMessage          `json:"training_stats,omitempty"`
	Exercises []TrainingExerciseDetail `json:"exercicios"`
}

// ExerciseAssociation is one exercise of a training creation request. Zero
// sets/reps/load fall back to the request-level values.
type ExerciseAssociation struct {
	ExerciseID int64   `json:"id_exercicio" validate:"required,gt=0"`
	Sets       int     `json:"series" validate:"gte=0"`
	Reps       int     `json:"repeticoes" validate:"gte=0"`
	Load       float64 `json:"carga" validate:"gte=0"`
}

// CreateTrainingRequest represents POST /treino/create.
type CreateTrainingRequest struct {
	Name      string                `json:"nome_treino" validate:"required,max=150"`
	ClientID  int64                 `json:"id_cliente" validate:"required,gt=0"`
	StartTime string                `json:"hora_treino_inicio" validate:"omitempty,clock"`
	EndTime   string                `json:"hora_treino_fim" validate:"omitempty,clock"`
	Date      string                `json:"data_treino" validate:"required,isodate"`
	Exercises []ExerciseAssociation `json:"exercicios_id" validate:"required,min=1,dive"`
	Reps      int                   `json:"repeticoes" validate:"gte=0"`
	Sets      int                   `json:"series" validate:"gte=0"`
	Load      float64               `json:"carga" validate:"gte=0"`
	Stats     json.RawMessage       `json:"training_stats"`
}

// UpdateTrainingStatsRequest represents PUT /treino/usuario/update.
type UpdateTrainingStatsRequest struct {
	ID    int64           `json:"id" validate:"required,gt=0"`
	Stats json.RawMessage `json:"training_stats"`
}

// UpdateTrainingExerciseRequest represents PUT /treino/treino-exercicio/update.
// ID is the treino_exercicios row id.
type UpdateTrainingExerciseRequest struct {
	ID   int64   `json:"id_exercicio" validate:"required,gt=0"`
	Load float64 `json:"carga" validate:"gte=0"`
	Sets int     `json:"series" validate:"gte=0"`
	Reps int     `json:"repeticoes" validate:"gte=0"`
}
