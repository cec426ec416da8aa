package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/habitat"
)

// ActionRequest is the request body for a care action
type ActionRequest struct {
	Action string `json:"action" validate:"required,hamster_action"`
}

// FeedRequest is the request body for buying and feeding a food
type FeedRequest struct {
	Food string `json:"food" validate:"required"`
}

// RenameRequest is the request body for renaming a hamster
type RenameRequest struct {
	Name string `json:"name" validate:"required,max=24,hamster_name"`
}

// EquipRequest is the request body for equipping an owned accessory
type EquipRequest struct {
	Accessory string `json:"accessory" validate:"required"`
}

// UnequipRequest is the request body for clearing an accessory slot
type UnequipRequest struct {
	Slot string `json:"slot" validate:"required,oneof=head face neck body back"`
}

// FreezeRequest is the request body for pausing or resuming a hamster
type FreezeRequest struct {
	Frozen bool `json:"frozen"`
}

// ColorRequest is the request body for buying a new coat
type ColorRequest struct {
	Color string `json:"color" validate:"required"`
}

// BreedRequest is the request body for pairing two hamsters
type BreedRequest struct {
	ParentA string `json:"parent_a" validate:"required,uuid"`
	ParentB string `json:"parent_b" validate:"required,uuid"`
	Name    string `json:"name" validate:"omitempty,max=24"`
}

// HamsterResponse wraps a hamster view with a message
type HamsterResponse struct {
	Message string              `json:"message,omitempty"`
	Hamster habitat.HamsterView `json:"hamster"`
}

// HandleGetHamster returns one hamster
// @Summary Get a hamster
// @Tags hamsters
// @Produce json
// @Param id path string true "Hamster ID"
// @Success 200 {object} HamsterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /hamsters/{id} [get]
func (h *HabitatHandler) HandleGetHamster(w http.ResponseWriter, r *http.Request) {
	id, ok := hamsterIDParam(w, r)
	if !ok {
		return
	}

	var view habitat.HamsterView
	err := h.runner.Do(r.Context(), func(hab *habitat.Habitat) error {
		v, found := hab.HamsterView(id.String())
		if !found {
			return domain.ErrHamsterNotFound
		}
		view = v
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Get hamster", err)
		return
	}
	respondJSON(w, http.StatusOK, HamsterResponse{Hamster: view})
}

// HandleAction starts a care action
// @Summary Start a care action
// @Description Feed, play, sleep, wheel, pet or kill. Rejected while another commanded action resolves
// @Tags hamsters
// @Accept json
// @Produce json
// @Param id path string true "Hamster ID"
// @Param request body ActionRequest true "Action"
// @Success 200 {object} HamsterResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Hamster busy or dead"
// @Security ApiKeyAuth
// @Router /hamsters/{id}/actions [post]
func (h *HabitatHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hamster action"); err != nil {
		return
	}
	id, ok := hamsterIDParam(w, r)
	if !ok {
		return
	}
	action := habitat.Action(strings.ToLower(req.Action))
	h.hamsterResult(w, r, id, "Hamster action", MsgActionStarted, func(ctx context.Context, hab *habitat.Habitat) error {
		return hab.Act(ctx, id, action)
	})
}

// HandleFeed buys a food and feeds it
// @Summary Feed a specific food
// @Description Buys the food with session coins and starts a meal
// @Tags hamsters
// @Accept json
// @Produce json
// @Param id path string true "Hamster ID"
// @Param request body FeedRequest true "Food"
// @Success 200 {object} HamsterResponse
// @Failure 402 {object} ErrorResponse "Insufficient funds"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /hamsters/{id}/feed [post]
func (h *HabitatHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	var req FeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Feed hamster"); err != nil {
		return
	}
	id, ok := hamsterIDParam(w, r)
	if !ok {
		return
	}
	h.hamsterResult(w, r, id, "Feed hamster", MsgActionStarted, func(ctx context.Context, hab *habitat.Habitat) error {
		return hab.FeedFood(ctx, id, req.Food)
	})
}

// HandleRename renames a hamster
// @Summary Rename a hamster
// @Tags hamsters
// @Accept json
// @Produce json
// @Param id path string true "Hamster ID"
// @Param request body RenameRequest true "New name"
// @Success 200 {object} HamsterResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /hamsters/{id}/rename [post]
func (h *HabitatHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rename hamster"); err != nil {
		return
	}
	id, ok := hamsterIDParam(w, r)
	if !ok {
		return
	}
	h.hamsterResult(w, r, id, "Rename hamster", MsgHamsterRenamed, func(_ context.Context, hab *habitat.Habitat) error {
		return hab.Rename(id, req.Name)
	})
}

// HandleEquip puts an owned accessory on a hamster
// @Summary Equip an accessory
// @Description Only owned accessories can be worn; one per slot
// @Tags hamsters
// @Accept json
// @Produce json
// @Param id path string true "Hamster ID"
// @Param request body EquipRequest true "Accessory"
// @Success 200 {object} HamsterResponse
// @Failure 403 {object} ErrorResponse "Accessory not owned"
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /hamsters/{id}/equip [post]
func (h *HabitatHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	var req EquipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip accessory"); err != nil {
		return
	}
	id, ok := hamsterIDParam(w, r)
	if !ok {
		return
	}
	h.hamsterResult(w, r, id, "Equip accessory", MsgHamsterUpdated, func(_ context.Context, hab *habitat.Habitat) error {
		return hab.Equip(id, req.Accessory)
	})
}

// HandleUnequip clears an accessory slot
// @Summary Clear an accessory slot
// @Tags hamsters
// @Accept json
// @Produce json
// @Param id path string true "Hamster ID"
// @Param request body UnequipRequest true "Slot"
// @Success 200 {object} HamsterResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /hamsters/{id}/unequip [post]
func (h *HabitatHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	var req UnequipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unequip accessory"); err != nil {
		return
	}
	id, ok := hamsterIDParam(w, r)
	if !ok {
		return
	}
	h.hamsterResult(w, r, id, "Unequip accessory", MsgHamsterUpdated, func(_ context.Context, hab *habitat.Habitat) error {
		return hab.Unequip(id, req.Slot)
	})
}

// HandleFreeze pauses or resumes a hamster
// @Summary Freeze or unfreeze a hamster
// @Description Frozen hamsters skip ticks and refuse commands other than kill
// @Tags hamsters
// @Accept json
// @Produce json
// @Param id path string true "Hamster ID"
// @Param request body FreezeRequest true "Frozen flag"
// @Success 200 {object} HamsterResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /hamsters/{id}/freeze [post]
func (h *HabitatHandler) HandleFreeze(w http.ResponseWriter, r *http.Request) {
	var req FreezeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Freeze hamster"); err != nil {
		return
	}
	id, ok := hamsterIDParam(w, r)
	if !ok {
		return
	}
	h.hamsterResult(w, r, id, "Freeze hamster", MsgHamsterUpdated, func(_ context.Context, hab *habitat.Habitat) error {
		return hab.Freeze(id, req.Frozen)
	})
}

// HandleRecolor buys a new coat for a hamster
// @Summary Buy a new coat color
// @Tags hamsters
// @Accept json
// @Produce json
// @Param id path string true "Hamster ID"
// @Param request body ColorRequest true "Color"
// @Success 200 {object} HamsterResponse
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /hamsters/{id}/color [post]
func (h *HabitatHandler) HandleRecolor(w http.ResponseWriter, r *http.Request) {
	var req ColorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Recolor hamster"); err != nil {
		return
	}
	id, ok := hamsterIDParam(w, r)
	if !ok {
		return
	}
	h.hamsterResult(w, r, id, "Recolor hamster", MsgItemPurchased, func(ctx context.Context, hab *habitat.Habitat) error {
		return hab.Recolor(ctx, id, strings.ToLower(req.Color))
	})
}

// HandleBreed pairs two hamsters and returns the baby
// @Summary Breed two hamsters
// @Description Both parents must be eligible; both start a breed cooldown
// @Tags breeding
// @Accept json
// @Produce json
// @Param request body BreedRequest true "Parents"
// @Success 201 {object} HamsterResponse
// @Failure 400 {object} ErrorResponse "Same parent or invalid input"
// @Failure 409 {object} ErrorResponse "Not eligible or habitat full"
// @Security ApiKeyAuth
// @Router /breed [post]
func (h *HabitatHandler) HandleBreed(w http.ResponseWriter, r *http.Request) {
	var req BreedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Breed"); err != nil {
		return
	}
	a, b := uuid.MustParse(req.ParentA), uuid.MustParse(req.ParentB)
	ctx := r.Context()

	var view habitat.HamsterView
	err := h.runner.Do(ctx, func(hab *habitat.Habitat) error {
		child, err := hab.Breed(ctx, a, b, req.Name)
		if err != nil {
			return err
		}
		view = habitat.NewHamsterView(child)
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Breed", err)
		return
	}
	respondJSON(w, http.StatusCreated, HamsterResponse{Message: MsgHamsterBred, Hamster: view})
}
