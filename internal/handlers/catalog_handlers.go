package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ListPlans
// @Summary      List plans
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   models.Plan
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /planos [get]
func (h *Handlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.catalog.ListPlans(r.Context())
	if err != nil {
		h.respondError(w, r, err, "List plans")
		return
	}
	if len(plans) == 0 {
		writeError(w, r, h.app, http.StatusNotFound, "no plans found")
		return
	}
	writeJSON(w, h.app, http.StatusOK, plans)
}

// ListExercises
// @Summary      List all exercises
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   models.Exercise
// @Failure      404  {object}  map[string]string
// @Router       /treino/exercicios [get]
func (h *Handlers) ListExercises(w http.ResponseWriter, r *http.Request) {
	h.listExercises(w, r, "")
}

// ListExercisesByType filters by tipo_exercicio; "Todos" lists every exercise.
// @Summary      List exercises by type
// @Tags         catalog
// @Produce      json
// @Param        tipo  path      string  true  "Exercise type or Todos"
// @Success      200   {array}   models.Exercise
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /treino/exercicios/tipos/{tipo} [get]
func (h *Handlers) ListExercisesByType(w http.ResponseWriter, r *http.Request) {
	h.listExercises(w, r, mux.Vars(r)["tipo"])
}

func (h *Handlers) listExercises(w http.ResponseWriter, r *http.Request, exerciseType string) {
	exercises, err := h.catalog.ListExercises(r.Context(), exerciseType)
	if err != nil {
		h.respondError(w, r, err, "List exercises")
		return
	}
	if len(exercises) == 0 {
		writeError(w, r, h.app, http.StatusNotFound, "no exercises found")
		return
	}
	writeJSON(w, h.app, http.StatusOK, exercises)
}
