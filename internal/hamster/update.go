package hamster

import (
	"math"

	"github.com/osse101/HamsterHaven_Go/internal/buff"
)

var vitalBuff = [...]buff.Type{
	VitalHunger:    buff.HungerDrain,
	VitalHappiness: buff.HappinessDrain,
	VitalEnergy:    buff.EnergyDrain,
}

// Update advances the hamster by one frame. Dead and frozen hamsters are
// left untouched.
func (h *Hamster) Update(tod TimeOfDay) {
	if h.dead || h.frozen {
		return
	}

	h.frame++
	h.buffs.Tick()
	if h.breedCooldown > 0 {
		h.breedCooldown--
	}
	if h.interactionCooldown > 0 {
		h.interactionCooldown--
	}

	h.age()
	h.applyDrains(tod)
	h.applyEnergy(tod)
	h.rollPoop()

	if h.checkDeath() {
		return
	}

	if h.stateTimer > 0 {
		h.stateTimer--
	}
	if h.stateTimer <= 0 {
		if h.userAction {
			h.resolveAction(tod)
			h.startWalking()
		} else {
			h.reroll(tod)
		}
	}
}

func (h *Hamster) age() {
	h.ageAccumulator += h.params.AgingSpeed
	whole := math.Floor(h.ageAccumulator)
	h.ageFrames += int64(whole)
	h.ageAccumulator -= whole
}

// drainAmount is max(1, floor(drainMult * buff * personality * timeOfDay)).
func (h *Hamster) drainAmount(v Vital, tod TimeOfDay) int {
	amount := h.params.DrainMultiplier *
		h.buffs.Multiplier(vitalBuff[v]) *
		h.Personality.Traits().drain(v) *
		tod.DrainMultiplier(v)
	return max(1, int(math.Floor(amount)))
}

func (h *Hamster) every(interval int) bool {
	if interval <= 0 {
		interval = 1
	}
	return h.frame%int64(interval) == 0
}

func (h *Hamster) applyDrains(tod TimeOfDay) {
	if !h.every(h.params.DrainInterval) {
		return
	}
	h.AdjustVitals(-h.drainAmount(VitalHunger, tod), -h.drainAmount(VitalHappiness, tod), 0)
}

func (h *Hamster) applyEnergy(tod TimeOfDay) {
	napping := h.state == Sleeping && !h.userAction

	switch {
	case napping:
		if h.every(EnergyRecoverInterval) {
			gain := max(1, int(math.Floor(tod.BaseRecovery()*h.Personality.Traits().SleepGain)))
			h.AdjustVitals(0, 0, gain)
		}
		if h.energy >= h.maxStat {
			h.stateTimer = 0
		}
	case !h.userAction:
		if h.every(EnergyDrainInterval) {
			h.AdjustVitals(0, 0, -h.drainAmount(VitalEnergy, tod))
		}
	}

	if h.state != RunningWheel {
		return
	}
	if !h.userAction && h.every(WheelInterval) {
		h.AdjustVitals(0, WheelHappiness, -h.drainAmount(VitalEnergy, tod))
	}
	if h.energy < WheelExitEnergy {
		// Exhausted: a commanded wheel run forfeits its reward.
		h.userAction = false
		h.pendingFood = nil
		h.enter(Idle, h.between(IdleFramesMin, IdleFramesMax))
	}
}

func (h *Hamster) rollPoop() {
	h.poopCounter++
	if h.poopCounter < PoopRollThreshold {
		return
	}
	chance := (PoopRollBase + float64(h.hunger)/PoopRollHungerDivisor) * h.params.PoopFrequency
	if h.rng.Float64()*PoopRollScale < chance {
		h.pendingPoops++
		h.poopCounter = 0
	}
}

func (h *Hamster) checkDeath() bool {
	switch {
	case h.hunger <= 0 || h.happiness <= 0 || h.energy <= 0:
		h.die(CauseNeglect)
	case h.ageFrames >= h.lifespanFrames:
		h.die(CauseOldAge)
	default:
		return false
	}
	return true
}

func (h *Hamster) die(cause DeathCause) {
	h.dead = true
	h.deathCause = cause
	h.userAction = false
	h.pendingFood = nil
	h.state = Idle
	h.stateTimer = 0
}

func (h *Hamster) enter(s State, frames int) {
	h.state = s
	h.stateTimer = frames
}

func (h *Hamster) startWalking() {
	h.userAction = false
	h.pendingFood = nil
	if h.rng.IntN(2) == 0 {
		h.direction = -1
	} else {
		h.direction = 1
	}
	h.speed = WalkSpeedMin + h.rng.Float64()*(WalkSpeedMax-WalkSpeedMin)
	h.enter(Walking, h.between(WalkFramesMin, WalkFramesMax))
}

// reroll picks the next autonomous state.
func (h *Hamster) reroll(tod TimeOfDay) {
	switch {
	case h.energy < AutoSleepEnergy:
		h.enter(Sleeping, h.between(NapFramesMin, NapFramesMax))
		return
	case h.energy < TiredSleepEnergy && h.rng.Float64() < tod.SleepChance():
		h.enter(Sleeping, h.between(NapFramesMin, NapFramesMax))
		return
	}

	r := h.rng.Float64()
	switch {
	case r < WalkChance:
		h.startWalking()
	case r < WalkChance+WheelChance && h.energy > WheelMinEnergy:
		h.enter(RunningWheel, h.between(WheelFramesMin, WheelFramesMax))
	default:
		h.enter(Idle, h.between(IdleFramesMin, IdleFramesMax))
	}
}

// resolveAction applies the reward of the finished commanded action once.
func (h *Hamster) resolveAction(tod TimeOfDay) {
	traits := h.Personality.Traits()
	gain := h.params.ActionGain
	coins := func(base float64) {
		h.pendingCoins += (base + h.params.CoinBonus + tod.CoinBonus()) * traits.Coin
	}

	switch h.state {
	case Eating:
		if f := h.pendingFood; f != nil {
			hunger := int(math.Floor(float64(f.Hunger) * traits.FeedGain))
			h.AdjustVitals(hunger, f.Happiness, f.Energy)
		} else {
			h.AdjustVitals(int(math.Floor(float64(gain)*traits.FeedGain)), 0, 0)
		}
		coins(FeedCoinBase)
	case Happy:
		h.AdjustVitals(0, int(math.Floor(float64(gain)*traits.PlayGain)), -PlayEnergyCost)
		coins(PlayCoinBase)
	case RunningWheel:
		h.AdjustVitals(0, gain, -WheelEnergyCost)
		coins(WheelCoinBase)
	case Sleeping:
		h.AdjustVitals(0, 0, int(math.Floor(float64(gain)*traits.SleepGain)))
	}
	h.pendingFood = nil
}
