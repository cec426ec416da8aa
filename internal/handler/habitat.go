package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/HamsterHaven_Go/internal/habitat"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
)

// NewGameRequest is the request body for starting a run
type NewGameRequest struct {
	Name string `json:"name" validate:"omitempty,max=24"`
}

// NewGameResponse is returned after a run starts
type NewGameResponse struct {
	Message string              `json:"message"`
	Hamster habitat.HamsterView `json:"hamster"`
}

// HandleGetHabitat returns the whole habitat
// @Summary Get the habitat
// @Description Current run, hamsters, poops, coins and time of day
// @Tags habitat
// @Produce json
// @Success 200 {object} habitat.View
// @Security ApiKeyAuth
// @Router /habitat [get]
func (h *HabitatHandler) HandleGetHabitat(w http.ResponseWriter, r *http.Request) {
	now := h.runner.Now()
	view, err := query(r.Context(), h.runner, func(hab *habitat.Habitat) habitat.View {
		return hab.View(now)
	})
	if err != nil {
		respondServiceError(w, r, "Get habitat", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleNewGame starts a run, applying any pending legacy
// @Summary Start a new game
// @Description Starts a run with a first hamster; any pending legacy is applied
// @Tags habitat
// @Accept json
// @Produce json
// @Param request body NewGameRequest false "Optional first hamster name"
// @Success 201 {object} NewGameResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "A game is already running"
// @Security ApiKeyAuth
// @Router /game [post]
func (h *HabitatHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "New game"); err != nil {
			return
		}
	}

	var resp NewGameResponse
	err := h.runner.Do(r.Context(), func(hab *habitat.Habitat) error {
		first, err := hab.NewGame(r.Context(), req.Name)
		if err != nil {
			return err
		}
		resp = NewGameResponse{Message: MsgGameStarted, Hamster: habitat.NewHamsterView(first)}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "New game", err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// HandleSave queues an immediate save
// @Summary Save now
// @Description Queues an immediate profile save
// @Tags habitat
// @Produce json
// @Success 202 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /save [post]
func (h *HabitatHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := h.runner.SaveNow(r.Context()); err != nil {
		respondServiceError(w, r, "Save", err)
		return
	}
	logger.FromContext(r.Context()).Info(MsgSaveQueued)
	respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgSaveQueued})
}

// CleanupResponse reports how many droppings were removed
type CleanupResponse struct {
	Message string `json:"message"`
	Cleaned int    `json:"cleaned"`
}

// HandleCollectPoop removes one dropping
// @Summary Clean one poop
// @Tags habitat
// @Produce json
// @Param id path string true "Poop ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Poop not found"
// @Failure 409 {object} ErrorResponse "No active game"
// @Security ApiKeyAuth
// @Router /poops/{id} [delete]
func (h *HabitatHandler) HandleCollectPoop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.runner.Do(r.Context(), func(hab *habitat.Habitat) error {
		return hab.CollectPoop(r.Context(), id)
	})
	if err != nil {
		respondServiceError(w, r, "Collect poop", err)
		return
	}
	respondJSON(w, http.StatusOK, CleanupResponse{Message: MsgPoopCleaned, Cleaned: 1})
}

// HandleCollectAllPoops removes every dropping
// @Summary Clean every poop
// @Tags habitat
// @Produce json
// @Success 200 {object} CleanupResponse
// @Failure 409 {object} ErrorResponse "No active game"
// @Security ApiKeyAuth
// @Router /poops [delete]
func (h *HabitatHandler) HandleCollectAllPoops(w http.ResponseWriter, r *http.Request) {
	n, err := query(r.Context(), h.runner, func(hab *habitat.Habitat) int {
		return hab.CollectAllPoops(r.Context())
	})
	if err != nil {
		respondServiceError(w, r, "Collect all poops", err)
		return
	}
	respondJSON(w, http.StatusOK, CleanupResponse{Message: MsgPoopCleaned, Cleaned: n})
}

// hamsterResult runs a command against one hamster and responds with its
// updated view
func (h *HabitatHandler) hamsterResult(w http.ResponseWriter, r *http.Request, id uuid.UUID, opName, msg string, fn func(context.Context, *habitat.Habitat) error) {
	ctx := r.Context()

	var view habitat.HamsterView
	err := h.runner.Do(ctx, func(hab *habitat.Habitat) error {
		if err := fn(ctx, hab); err != nil {
			return err
		}
		view, _ = hab.HamsterView(id.String())
		return nil
	})
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, HamsterResponse{Message: msg, Hamster: view})
}
