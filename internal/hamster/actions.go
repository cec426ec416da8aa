package hamster

// command starts a commanded action. Its reward is applied once when the
// action window expires.
func (h *Hamster) command(s State) bool {
	if h.dead || h.userAction {
		return false
	}
	h.pendingFood = nil
	h.userAction = true
	h.enter(s, ActionFrames)
	return true
}

// Feed starts a generic meal
func (h *Hamster) Feed() bool {
	return h.command(Eating)
}

// FeedFood starts a meal of a specific food
func (h *Hamster) FeedFood(f Food) bool {
	if !h.command(Eating) {
		return false
	}
	h.pendingFood = &f
	return true
}

// Play starts a play session
func (h *Hamster) Play() bool {
	return h.command(Happy)
}

// Sleep sends the hamster to bed for a short commanded nap
func (h *Hamster) Sleep() bool {
	return h.command(Sleeping)
}

// RunWheel puts the hamster on the wheel
func (h *Hamster) RunWheel() bool {
	return h.command(RunningWheel)
}

// Kill ends the hamster's life immediately
func (h *Hamster) Kill() bool {
	if h.dead {
		return false
	}
	h.die(CauseKilled)
	return true
}

// Pet gives a small happiness boost, gated by the interaction cooldown.
// A hamster busy with a commanded action cannot be petted.
func (h *Hamster) Pet() bool {
	if h.dead || h.userAction || h.interactionCooldown > 0 {
		return false
	}
	h.AdjustVitals(0, PetHappiness, 0)
	h.interactionCooldown = InteractionCooldownFrames
	return true
}

// Equip wears an owned accessory, replacing whatever occupies its slot.
func (h *Hamster) Equip(id AccessoryID, owned Wardrobe) bool {
	if h.dead {
		return false
	}
	acc, ok := LookupAccessory(id)
	if !ok || owned == nil || !owned.Owns(id) {
		return false
	}
	h.wear(acc)
	return true
}

func (h *Hamster) wear(acc Accessory) {
	kept := h.equipped[:0]
	for _, cur := range h.equipped {
		if a, ok := LookupAccessory(cur); ok && a.Slot != acc.Slot {
			kept = append(kept, cur)
		}
	}
	h.equipped = append(kept, acc.ID)
}

// Unequip removes whatever is worn in the slot
func (h *Hamster) Unequip(slot Slot) bool {
	for i, cur := range h.equipped {
		if a, ok := LookupAccessory(cur); ok && a.Slot == slot {
			h.equipped = append(h.equipped[:i], h.equipped[i+1:]...)
			return true
		}
	}
	return false
}
