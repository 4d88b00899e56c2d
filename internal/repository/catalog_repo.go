package repository

import (
	"context"

	"dicefit-api/internal/core"
	"dicefit-api/internal/database"
	"dicefit-api/internal/models"
)

type PostgresCatalogRepository struct {
	db database.Pool
}

func NewCatalogRepository(db database.Pool) core.CatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListPlans(ctx context.Context) ([]models.Plan, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nome, descricao, preco::float8 FROM planos ORDER BY id`)
	if err != nil {
		return nil, core.StorageError("list plans", err)
	}
	defer rows.Close()

	plans := make([]models.Plan, 0)
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			return nil, core.StorageError("scan plan", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, core.StorageError("list plans", err)
	}
	return plans, nil
}

func (r *PostgresCatalogRepository) ListExercises(ctx context.Context, exerciseType string) ([]models.Exercise, error) {
	query := `SELECT id, nome_exercicio, tipo_exercicio FROM exercicios`
	var args []any
	if exerciseType != "" {
		query += ` WHERE tipo_exercicio = $1`
		args = append(args, exerciseType)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, core.StorageError("list exercises", err)
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Type); err != nil {
			return nil, core.StorageError("scan exercise", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, core.StorageError("list exercises", err)
	}
	return exercises, nil
}
