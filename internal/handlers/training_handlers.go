package handlers

import (
	"net/http"
	"strconv"

	"dicefit-api/internal/models"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// CreateTraining stores a training session and its exercises.
// @Summary      Create training
// @Tags         training
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTrainingRequest  true  "Training"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /treino/create [post]
func (h *Handlers) CreateTraining(w http.ResponseWriter, r *http.Request) {
	tracer := otel.Tracer("handlers")
	ctx, span := tracer.Start(r.Context(), "Handlers.CreateTraining")
	defer span.End()

	var req models.CreateTrainingRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	training, err := h.training.CreateTraining(ctx, req)
	if err != nil {
		h.respondError(w, r, err, "Create training")
		return
	}
	span.SetAttributes(attribute.Int64("training.id", training.ID))

	writeJSON(w, h.app, http.StatusCreated, map[string]interface{}{
		"message": "Training created successfully",
		"treino":  training,
	})
}

// ListTrainingsForClient
// @Summary      List a client's trainings
// @Tags         training
// @Produce      json
// @Param        id_cliente  path      int  true  "Client id"
// @Success      200         {array}   models.TrainingWithExercises
// @Failure      400         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /treino/usuario/{id_cliente} [get]
func (h *Handlers) ListTrainingsForClient(w http.ResponseWriter, r *http.Request) {
	tracer := otel.Tracer("handlers")
	ctx, span := tracer.Start(r.Context(), "Handlers.ListTrainingsForClient")
	defer span.End()

	clientID, err := strconv.ParseInt(mux.Vars(r)["id_cliente"], 10, 64)
	if err != nil || clientID <= 0 {
		writeError(w, r, h.app, http.StatusBadRequest, "id_cliente must be a positive number")
		return
	}
	span.SetAttributes(attribute.Int64("client.id", clientID))

	trainings, err := h.training.ListTrainingsForClient(ctx, clientID)
	if err != nil {
		h.respondError(w, r, err, "List trainings")
		return
	}
	writeJSON(w, h.app, http.StatusOK, trainings)
}

// UpdateTrainingStats
// @Summary      Replace training stats
// @Tags         training
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateTrainingStatsRequest  true  "Training id and stats"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /treino/usuario/update [put]
func (h *Handlers) UpdateTrainingStats(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTrainingStatsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.training.UpdateTrainingStats(r.Context(), req); err != nil {
		h.respondError(w, r, err, "Update training stats")
		return
	}
	writeMessage(w, h.app, http.StatusOK, "Training stats updated successfully")
}

// UpdateTrainingExercise
// @Summary      Update an exercise of a training
// @Tags         training
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateTrainingExerciseRequest  true  "Row id with load, sets and reps"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /treino/treino-exercicio/update [put]
func (h *Handlers) UpdateTrainingExercise(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTrainingExerciseRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.training.UpdateTrainingExercise(r.Context(), req); err != nil {
		h.respondError(w, r, err, "Update training exercise")
		return
	}
	writeMessage(w, h.app, http.StatusOK, "Training exercise updated successfully")
}

// AddFeedback records a rating for a finished training.
// @Summary      Send training feedback
// @Tags         training
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      models.FeedbackRequest  true  "Feedback"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /send-rating [post]
func (h *Handlers) AddFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	feedback, err := h.feedback.AddFeedback(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err, "Add feedback")
		return
	}

	writeJSON(w, h.app, http.StatusCreated, map[string]interface{}{
		"message": "Feedback sent successfully",
		"result":  feedback,
	})
}
