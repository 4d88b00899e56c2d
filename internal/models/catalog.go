package models

// AllExerciseTypes is the filter value that disables type filtering.
const AllExerciseTypes = "Todos"

// Plan is a subscription plan (table planos).
type Plan struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
}

// UserPlan is the plan attached to an account's profile.
type UserPlan struct {
	PlanID int64  `json:"id_plano"`
	Name   string `json:"plano"`
}

// Exercise is a catalog exercise (table exercicios).
type Exercise struct {
	ID   int64  `json:"id"`
	Name string `json:"nome_exercicio"`
	Type string `json:"tipo_exercicio"`
}
