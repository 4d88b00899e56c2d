package repository

import (
	"context"
	"encoding/json"

	"dicefit-api/internal/core"
	"dicefit-api/internal/database"
	"dicefit-api/internal/models"

	"github.com/jackc/pgx/v5"
)

type PostgresTrainingRepository struct {
	db database.Pool
}

func NewTrainingRepository(db database.Pool) core.TrainingRepository {
	return &PostgresTrainingRepository{db: db}
}

// Create inserts the training and one treino_exercicios row per exercise.
// Either every row is stored or none is.
func (r *PostgresTrainingRepository) Create(ctx context.Context, training *models.Training, exercises []models.TrainingExercise) (*models.Training, error) {
	created := *training
	created.Exercises = make([]models.TrainingExercise, len(exercises))
	copy(created.Exercises, exercises)

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO treino (nome_treino, id_cliente, hora_treino_inicio, hora_treino_fim, data_treino, training_stats)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			created.Name, created.ClientID, nullString(created.StartTime), nullString(created.EndTime),
			created.Date, nullJSON(created.Stats),
		).Scan(&created.ID)
		if err != nil {
			return core.StorageError("insert training", err)
		}

		for i := range created.Exercises {
			e := &created.Exercises[i]
			e.TrainingID = created.ID
			err := tx.QueryRow(ctx, `
				INSERT INTO treino_exercicios (id_treino, id_exercicio, series, repeticoes, carga)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`,
				e.TrainingID, e.ExerciseID, e.Sets, e.Reps, e.Load,
			).Scan(&e.ID)
			if err != nil {
				return core.StorageError("insert training exercise", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByClient returns the client's trainings, newest first, each with its
// exercises joined from the catalog. Trainings without exercises carry an
// empty list.
func (r *PostgresTrainingRepository) ListByClient(ctx context.Context, clientID int64) ([]models.TrainingWithExercises, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.nome_treino, t.id_cliente,
			COALESCE(t.hora_treino_inicio::text, ''), COALESCE(t.hora_treino_fim::text, ''),
			t.data_treino::text, t.training_stats,
			COALESCE(te.id, 0), COALESCE(te.id_exercicio, 0), COALESCE(e.nome_exercicio, ''),
			COALESCE(te.series, 0), COALESCE(te.repeticoes, 0), COALESCE(te.carga, 0)
		FROM treino t
		LEFT JOIN treino_exercicios te ON te.id_treino = t.id
		LEFT JOIN exercicios e ON e.id = te.id_exercicio
		WHERE t.id_cliente = $1
		ORDER BY t.data_treino DESC, t.id DESC, te.id`, clientID)
	if err != nil {
		return nil, core.StorageError("list trainings", err)
	}
	defer rows.Close()

	trainings := make([]models.TrainingWithExercises, 0)
	for rows.Next() {
		var (
			t     models.TrainingWithExercises
			stats []byte
			d     models.TrainingExerciseDetail
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.ClientID, &t.StartTime, &t.EndTime, &t.Date, &stats,
			&d.TrainingExerciseID, &d.ExerciseID, &d.Name, &d.Sets, &d.Reps, &d.Load); err != nil {
			return nil, core.StorageError("scan training", err)
		}

		// Rows arrive grouped by training.
		if n := len(trainings); n == 0 || trainings[n-1].ID != t.ID {
			if len(stats) > 0 {
				t.Stats = json.RawMessage(stats)
			}
			t.Exercises = make([]models.TrainingExerciseDetail, 0)
			trainings = append(trainings, t)
		}
		if d.TrainingExerciseID != 0 {
			last := &trainings[len(trainings)-1]
			last.Exercises = append(last.Exercises, d)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, core.StorageError("list trainings", err)
	}
	return trainings, nil
}

func (r *PostgresTrainingRepository) UpdateStats(ctx context.Context, trainingID int64, stats json.RawMessage) error {
	tag, err := r.db.Exec(ctx, `UPDATE treino SET training_stats = $1 WHERE id = $2`, nullJSON(stats), trainingID)
	if err != nil {
		return core.StorageError("update training stats", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrTrainingNotFound
	}
	return nil
}

func (r *PostgresTrainingRepository) UpdateExercise(ctx context.Context, row *models.TrainingExercise) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE treino_exercicios SET series = $1, repeticoes = $2, carga = $3
		WHERE id = $4`, row.Sets, row.Reps, row.Load, row.ID)
	if err != nil {
		return core.StorageError("update training exercise", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrTrainingExerciseNotFound
	}
	return nil
}
