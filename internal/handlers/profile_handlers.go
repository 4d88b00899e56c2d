package handlers

import (
	"net/http"

	"dicefit-api/internal/models"
)

// GetProfile returns the profile of the authenticated account.
// @Summary      Get profile
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  models.Profile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /perfil [get]
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	profile, err := h.auth.GetProfile(r.Context(), accountID)
	if err != nil {
		h.respondError(w, r, err, "Get profile")
		return
	}
	writeJSON(w, h.app, http.StatusOK, profile)
}

// UpdateProfile replaces the profile of the authenticated account.
// @Summary      Update profile
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateProfileRequest  true  "Every profile field"
// @Success      200   {object}  models.Profile
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /perfil/update [put]
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.auth.UpdateProfile(r.Context(), accountID, req)
	if err != nil {
		h.respondError(w, r, err, "Update profile")
		return
	}
	writeJSON(w, h.app, http.StatusOK, profile)
}

// GetPlan returns the plan attached to the authenticated account.
// @Summary      Get account plan
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  models.UserPlan
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /perfil/plano [get]
func (h *Handlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	plan, err := h.auth.GetPlan(r.Context(), accountID)
	if err != nil {
		h.respondError(w, r, err, "Get plan")
		return
	}
	writeJSON(w, h.app, http.StatusOK, plan)
}
