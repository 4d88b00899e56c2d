package repository

import (
	"context"
	"errors"

	"dicefit-api/internal/core"
	"dicefit-api/internal/database"
	"dicefit-api/internal/models"

	"github.com/jackc/pgx/v5"
)

type PostgresAccountRepository struct {
	db database.Pool
}

func NewAccountRepository(db database.Pool) core.AccountRepository {
	return &PostgresAccountRepository{db: db}
}

// --- Accounts ---

func (r *PostgresAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO registro (nome_completo, email, cpf, senha)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			account.FullName, account.Email, account.NationalID, account.PasswordHash,
		).Scan(&account.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return core.ErrDuplicateEmail
			}
			return core.StorageError("insert account", err)
		}

		if _, err := tx.Exec(ctx, `INSERT INTO perfil (id_registro) VALUES ($1)`, account.ID); err != nil {
			return core.StorageError("insert profile", err)
		}
		return nil
	})
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, nome_completo, email, cpf, senha FROM registro WHERE email = $1`, email,
	).Scan(&a.ID, &a.FullName, &a.Email, &a.NationalID, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, core.StorageError("get account by email", err)
	}
	return &a, nil
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var a models.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, nome_completo, email, cpf, senha FROM registro WHERE id = $1`, id,
	).Scan(&a.ID, &a.FullName, &a.Email, &a.NationalID, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, core.StorageError("get account", err)
	}
	return &a, nil
}

func (r *PostgresAccountRepository) UpdatePassword(ctx context.Context, accountID int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE registro SET senha = $1 WHERE id = $2`, hash, accountID)
	if err != nil {
		return core.StorageError("update password", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}

// --- Profiles ---

const profileColumns = `id, id_registro, altura, peso, objetivo,
	COALESCE(hora_treino_inicio::text, ''), COALESCE(data_treino_inicio::text, ''),
	COALESCE(hora_treino_fim::text, ''), COALESCE(data_treino_fim::text, ''), id_plano`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.AccountID, &p.Height, &p.Weight, &p.Goal,
		&p.TrainingStartTime, &p.TrainingStartDate, &p.TrainingEndTime, &p.TrainingEndDate, &p.PlanID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresAccountRepository) GetProfile(ctx context.Context, accountID int64) (*models.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM perfil WHERE id_registro = $1`, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrProfileNotFound
		}
		return nil, core.StorageError("get profile", err)
	}
	return p, nil
}

// UpdateProfile replaces every editable column of the profile owned by
// profile.AccountID and returns the stored row.
func (r *PostgresAccountRepository) UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, `
		UPDATE perfil SET altura = $1, peso = $2, objetivo = $3,
			hora_treino_inicio = $4, data_treino_inicio = $5,
			hora_treino_fim = $6, data_treino_fim = $7
		WHERE id_registro = $8
		RETURNING `+profileColumns,
		profile.Height, profile.Weight, profile.Goal,
		profile.TrainingStartTime, profile.TrainingStartDate,
		profile.TrainingEndTime, profile.TrainingEndDate,
		profile.AccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrProfileNotFound
		}
		return nil, core.StorageError("update profile", err)
	}
	return p, nil
}

func (r *PostgresAccountRepository) GetPlan(ctx context.Context, accountID int64) (*models.UserPlan, error) {
	var plan models.UserPlan
	err := r.db.QueryRow(ctx, `
		SELECT p.id, p.nome
		FROM perfil pf
		JOIN planos p ON pf.id_plano = p.id
		WHERE pf.id_registro = $1`, accountID,
	).Scan(&plan.PlanID, &plan.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrPlanNotFound
		}
		return nil, core.StorageError("get plan", err)
	}
	return &plan, nil
}
