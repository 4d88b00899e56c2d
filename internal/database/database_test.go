package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT version").
			WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow("PostgreSQL 16.2"))
		mock.ExpectBegin()
		mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectCommit()

		assert.NoError(t, HealthCheck(context.Background(), mock))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TransactionFailureRollsBack", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT version").
			WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow("PostgreSQL 16.2"))
		mock.ExpectBegin()
		mock.ExpectExec("SELECT 1").WillReturnError(errors.New("read only"))
		mock.ExpectRollback()

		err = HealthCheck(context.Background(), mock)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transaction query failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSchema_DependencyOrder(t *testing.T) {
	seen := map[string]int{}
	for i, table := range schema {
		seen[table.name] = i
	}
	assert.Less(t, seen["registro"], seen["perfil"])
	assert.Less(t, seen["planos"], seen["perfil"])
	assert.Less(t, seen["treino"], seen["treino_exercicios"])
	assert.Less(t, seen["exercicios"], seen["treino_exercicios"])
}
