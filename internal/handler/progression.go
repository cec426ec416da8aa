package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/HamsterHaven_Go/internal/achievement"
	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/habitat"
)

// UpgradeRequest is the request body for buying a meta upgrade
type UpgradeRequest struct {
	Track string `json:"track" validate:"required"`
}

// UpgradeResponse reports the new level of a track
type UpgradeResponse struct {
	Message string `json:"message"`
	Track   string `json:"track"`
	Level   int    `json:"level"`
	Seeds   int    `json:"seeds"`
}

// CheckAchievementsResponse lists achievements unlocked by a check
type CheckAchievementsResponse struct {
	Unlocked []achievement.Definition `json:"unlocked"`
}

// TriggerEventRequest is the request body for forcing a random event
type TriggerEventRequest struct {
	Event string `json:"event" validate:"required"`
}

// HandleGetMeta returns every meta track and the effective parameters
// @Summary Get meta progression
// @Tags meta
// @Produce json
// @Success 200 {object} habitat.MetaView
// @Security ApiKeyAuth
// @Router /meta [get]
func (h *HabitatHandler) HandleGetMeta(w http.ResponseWriter, r *http.Request) {
	view, err := query(r.Context(), h.runner, (*habitat.Habitat).MetaView)
	if err != nil {
		respondServiceError(w, r, "Get meta", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleUpgrade buys the next level of a meta track
// @Summary Upgrade a meta track
// @Description Spends seeds on the next level of a track
// @Tags meta
// @Accept json
// @Produce json
// @Param request body UpgradeRequest true "Track"
// @Success 200 {object} UpgradeResponse
// @Failure 402 {object} ErrorResponse "Not enough seeds or max level"
// @Failure 404 {object} ErrorResponse "Unknown track"
// @Security ApiKeyAuth
// @Router /meta/upgrade [post]
func (h *HabitatHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	var req UpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Meta upgrade"); err != nil {
		return
	}
	ctx := r.Context()

	resp := UpgradeResponse{Message: MsgUpgradePurchase, Track: req.Track}
	err := h.runner.Do(ctx, func(hab *habitat.Habitat) error {
		level, err := hab.Upgrade(ctx, req.Track)
		if err != nil {
			return err
		}
		resp.Level = level
		resp.Seeds = hab.Seeds()
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Meta upgrade", err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleGetAchievements returns achievement progress
// @Summary Get achievements
// @Tags achievements
// @Produce json
// @Success 200 {object} habitat.AchievementsView
// @Security ApiKeyAuth
// @Router /achievements [get]
func (h *HabitatHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	view, err := query(r.Context(), h.runner, (*habitat.Habitat).AchievementsView)
	if err != nil {
		respondServiceError(w, r, "Get achievements", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCheckAchievements evaluates achievements immediately
// @Summary Evaluate achievements now
// @Tags achievements
// @Produce json
// @Success 200 {object} CheckAchievementsResponse
// @Security ApiKeyAuth
// @Router /achievements/check [post]
func (h *HabitatHandler) HandleCheckAchievements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := h.runner.Now()
	unlocked, err := query(ctx, h.runner, func(hab *habitat.Habitat) []achievement.Definition {
		return hab.CheckAchievements(ctx, now)
	})
	if err != nil {
		respondServiceError(w, r, "Check achievements", err)
		return
	}
	if unlocked == nil {
		unlocked = []achievement.Definition{}
	}
	respondJSON(w, http.StatusOK, CheckAchievementsResponse{Unlocked: unlocked})
}

// HandleTriggerEvent forces a random event by key
// @Summary Trigger a random event
// @Tags habitat
// @Accept json
// @Produce json
// @Param request body TriggerEventRequest true "Event key"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Unknown event"
// @Failure 409 {object} ErrorResponse "No active game"
// @Security ApiKeyAuth
// @Router /events [post]
func (h *HabitatHandler) HandleTriggerEvent(w http.ResponseWriter, r *http.Request) {
	var req TriggerEventRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Trigger event"); err != nil {
		return
	}
	ctx := r.Context()

	err := h.runner.Do(ctx, func(hab *habitat.Habitat) error {
		if !hab.Active() {
			return domain.ErrNoActiveRun
		}
		if !hab.TriggerEvent(ctx, req.Event) {
			return fmt.Errorf("%w: unknown event %q", domain.ErrInvalidInput, req.Event)
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Trigger event", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEventTriggered})
}
