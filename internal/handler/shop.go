package handler

import (
	"net/http"

	"github.com/osse101/HamsterHaven_Go/internal/habitat"
)

// BuyAccessoryRequest is the request body for buying an accessory
type BuyAccessoryRequest struct {
	Accessory string `json:"accessory" validate:"required"`
}

// PurchaseResponse reports the balance after a purchase
type PurchaseResponse struct {
	Message string  `json:"message"`
	Item    string  `json:"item"`
	Coins   float64 `json:"coins"`
}

// HandleGetShop returns the catalog with prices and ownership
// @Summary Get the shop catalog
// @Description Foods, accessories and colors with prices and ownership
// @Tags shop
// @Produce json
// @Success 200 {object} habitat.ShopView
// @Security ApiKeyAuth
// @Router /shop [get]
func (h *HabitatHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	view, err := query(r.Context(), h.runner, (*habitat.Habitat).ShopView)
	if err != nil {
		respondServiceError(w, r, "Get shop", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleBuyAccessory buys an accessory for the profile
// @Summary Buy an accessory
// @Description Owned accessories stay on the profile across runs
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyAccessoryRequest true "Accessory"
// @Success 200 {object} PurchaseResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already owned"
// @Security ApiKeyAuth
// @Router /shop/accessories [post]
func (h *HabitatHandler) HandleBuyAccessory(w http.ResponseWriter, r *http.Request) {
	var req BuyAccessoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy accessory"); err != nil {
		return
	}
	ctx := r.Context()

	var coins float64
	err := h.runner.Do(ctx, func(hab *habitat.Habitat) error {
		if err := hab.BuyAccessory(ctx, req.Accessory); err != nil {
			return err
		}
		coins = hab.Coins()
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Buy accessory", err)
		return
	}
	respondJSON(w, http.StatusOK, PurchaseResponse{Message: MsgItemPurchased, Item: req.Accessory, Coins: coins})
}
