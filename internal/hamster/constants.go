package hamster

import "github.com/osse101/HamsterHaven_Go/internal/meta"

// Vital bounds
const (
	BaseMaxStat = 100
	HardMaxStat = 200
)

// Passive effect cadences, in frames
const (
	EnergyRecoverInterval = 200
	EnergyDrainInterval   = 400
	WheelInterval         = 200
	PoopRollThreshold     = 200
)

// Autonomous behaviour thresholds
const (
	AutoSleepEnergy  = 20
	TiredSleepEnergy = 60
	WheelMinEnergy   = 30
	WheelExitEnergy  = 10
	WalkChance       = 0.40
	WheelChance      = 0.15
	WheelHappiness   = 2
)

// Poop roll: (PoopRollBase + hunger/PoopRollHungerDivisor) * frequency in PoopRollScale
const (
	PoopRollBase          = 2.0
	PoopRollHungerDivisor = 20.0
	PoopRollScale         = 1000.0
)

// Commanded actions
const (
	ActionFrames    = 90
	FeedCoinBase    = 2.0
	PlayCoinBase    = 3.0
	WheelCoinBase   = 1.0
	PlayEnergyCost  = 3
	WheelEnergyCost = 5
)

// Interaction and breeding
const (
	PetHappiness              = 5
	InteractionCooldownFrames = 150
	BreedVitalMinimum         = 50
	BreedCooldownFrames       = 2 * meta.FramesPerDay
)

// Autonomous state durations, in frames [min, max)
const (
	IdleFramesMin  = 60
	IdleFramesMax  = 150
	WalkFramesMin  = 60
	WalkFramesMax  = 180
	WheelFramesMin = 150
	WheelFramesMax = 300
	NapFramesMin   = 600
	NapFramesMax   = 1200
	WalkSpeedMin   = 0.5
	WalkSpeedMax   = 2.0
	MaxNameLength  = 24
)
