package meta

// Simulation timing shared by every engine package
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 30

	// FramesPerDay is one in-game day at aging speed 1.0 (ten real minutes)
	FramesPerDay = TicksPerSecond * 60 * 10
)

// Seed economy
const (
	// SeedsPerHamsterRaised is credited per hamster that lived during a run
	SeedsPerHamsterRaised = 10

	// CoinsPerSeed converts leftover run coins into seeds
	CoinsPerSeed = 5
)

// Track keys, stable across saves
const (
	TrackKeyLifespan      = "lifespan"
	TrackKeyAgingSpeed    = "aging_speed"
	TrackKeyActionGain    = "action_gain"
	TrackKeyDrainAmount   = "drain_amount"
	TrackKeyDrainInterval = "drain_interval"
	TrackKeyHamsterSlots  = "hamster_slots"
	TrackKeyBreedAge      = "breed_age"
	TrackKeyCoinBonus     = "coin_bonus"
	TrackKeyPoopFrequency = "poop_frequency"
	TrackKeyPoopPenalty   = "poop_penalty"
	TrackKeyEventInterval = "event_interval"
	TrackKeyBuffDuration  = "buff_duration"
	TrackKeyStartingStats = "starting_stats"
)
