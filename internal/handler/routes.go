package handler

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the habitat API on r
func (h *HabitatHandler) RegisterRoutes(r chi.Router) {
	r.Get("/habitat", h.HandleGetHabitat)
	r.Post("/game", h.HandleNewGame)
	r.Post("/save", h.HandleSave)

	r.Route("/hamsters/{id}", func(r chi.Router) {
		r.Get("/", h.HandleGetHamster)
		r.Post("/actions", h.HandleAction)
		r.Post("/feed", h.HandleFeed)
		r.Post("/rename", h.HandleRename)
		r.Post("/equip", h.HandleEquip)
		r.Post("/unequip", h.HandleUnequip)
		r.Post("/freeze", h.HandleFreeze)
		r.Post("/color", h.HandleRecolor)
	})
	r.Post("/breed", h.HandleBreed)

	r.Delete("/poops", h.HandleCollectAllPoops)
	r.Delete("/poops/{id}", h.HandleCollectPoop)

	r.Get("/shop", h.HandleGetShop)
	r.Post("/shop/accessories", h.HandleBuyAccessory)

	r.Get("/meta", h.HandleGetMeta)
	r.Post("/meta/upgrade", h.HandleUpgrade)

	r.Get("/achievements", h.HandleGetAchievements)
	r.Post("/achievements/check", h.HandleCheckAchievements)

	r.Post("/events", h.HandleTriggerEvent)
}
