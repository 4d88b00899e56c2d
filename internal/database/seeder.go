package database

import (
	"context"
	"time"

	"dicefit-api/internal/config"
	"dicefit-api/internal/models"
)

var defaultPlans = []models.Plan{
	{Name: "Básico", Description: "Treinos de academia com acompanhamento mensal", Price: 79.90},
	{Name: "Intermediário", Description: "Treinos personalizados e revisão quinzenal", Price: 119.90},
	{Name: "Premium", Description: "Acompanhamento semanal com personal trainer", Price: 199.90},
}

var defaultExercises = []models.Exercise{
	{Name: "Supino reto", Type: "Peito"},
	{Name: "Crucifixo", Type: "Peito"},
	{Name: "Agachamento livre", Type: "Pernas"},
	{Name: "Leg press", Type: "Pernas"},
	{Name: "Cadeira extensora", Type: "Pernas"},
	{Name: "Remada curvada", Type: "Costas"},
	{Name: "Puxada frontal", Type: "Costas"},
	{Name: "Desenvolvimento", Type: "Ombros"},
	{Name: "Rosca direta", Type: "Braços"},
	{Name: "Tríceps corda", Type: "Braços"},
	{Name: "Esteira", Type: "Cardio"},
	{Name: "Bicicleta", Type: "Cardio"},
}

// SeedReferenceData inserts the default plans and exercise catalog. Rows that
// already exist are left untouched.
func SeedReferenceData(app *config.Application) {
	if !app.Config.SeedReferenceData {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, p := range defaultPlans {
		_, err := app.DB.Exec(ctx,
			`INSERT INTO planos (nome, descricao, preco) VALUES ($1, $2, $3) ON CONFLICT (nome) DO NOTHING`,
			p.Name, p.Description, p.Price)
		if err != nil {
			app.Logger.Error().Err(err).Str("plan", p.Name).Msg("Failed to seed plan")
			return
		}
	}

	for _, e := range defaultExercises {
		_, err := app.DB.Exec(ctx,
			`INSERT INTO exercicios (nome_exercicio, tipo_exercicio) VALUES ($1, $2) ON CONFLICT (nome_exercicio) DO NOTHING`,
			e.Name, e.Type)
		if err != nil {
			app.Logger.Error().Err(err).Str("exercise", e.Name).Msg("Failed to seed exercise")
			return
		}
	}

	app.Logger.Info().
		Int("plans", len(defaultPlans)).
		Int("exercises", len(defaultExercises)).
		Msg("Reference data seeded")
}
