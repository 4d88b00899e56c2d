package validation

import (
	"testing"

	"dicefit-api/internal/core"
	"dicefit-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_Register(t *testing.T) {
	err := ValidateStruct(models.RegisterRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrValidation)
	assert.Contains(t, err.Error(), "nome_completo is required")
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "cpf is required")

	assert.NoError(t, ValidateStruct(models.RegisterRequest{
		FullName: "Ana Souza", Email: "ana@example.com", NationalID: "12345678900", Password: "secret",
	}))
}

func TestValidateStruct_Training(t *testing.T) {
	valid := models.CreateTrainingRequest{
		Name:      "Push day",
		ClientID:  3,
		StartTime: "07:00",
		Date:      "2024-05-01",
		Exercises: []models.ExerciseAssociation{{ExerciseID: 1}},
	}
	assert.NoError(t, ValidateStruct(valid))

	noExercises := valid
	noExercises.Exercises = nil
	err := ValidateStruct(noExercises)
	assert.ErrorIs(t, err, core.ErrValidation)
	assert.Contains(t, err.Error(), "exercicios_id is required")

	badItem := valid
	badItem.Exercises = []models.ExerciseAssociation{{ExerciseID: 0}}
	assert.ErrorIs(t, ValidateStruct(badItem), core.ErrValidation)

	badDate := valid
	badDate.Date = "01/05/2024"
	err = ValidateStruct(badDate)
	assert.Contains(t, err.Error(), "data_treino must be a date as YYYY-MM-DD")
}

func TestIsClock(t *testing.T) {
	for _, s := range []string{"07:00", "23:59", "07:00:30"} {
		assert.True(t, IsClock(s), s)
	}
	for _, s := range []string{"", "7h", "25:00", "07:00:00:00"} {
		assert.False(t, IsClock(s), s)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Otimo treino", SanitizeString("  <b>Otimo</b> treino\x00 "))
	assert.Equal(t, "", SanitizeString("<script>alert(1)</script>"))
	assert.Equal(t, "Ana D'Ávila & Souza", SanitizeString("Ana D'Ávila & Souza"))
	assert.Equal(t, "peso < 80kg", SanitizeString("peso &lt; 80kg"))
}
