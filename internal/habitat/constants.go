package habitat

import "time"

// Tick cadences, in habitat frames
const (
	// PoopPenaltyInterval is how often uncleaned droppings cost happiness
	PoopPenaltyInterval = 200

	// AchievementInterval is how often achievements are evaluated
	AchievementInterval = 900

	// DefaultAutosaveEvery is the autosave cadence when none is configured
	DefaultAutosaveEvery = 900
)

// Economy
const (
	// StartingCoins are granted at the start of every run
	StartingCoins = 25.0
)

// Random event tuning
const (
	EventBuffFrames    = 1800
	FeastHunger        = 20
	BadDreamHappiness  = -10
	CozyNapMultiplier  = 0.5
	LuckyDayMultiplier = 2.0
	ZoomiesMultiplier  = 0.5
)

// Runner defaults
const (
	DefaultTickInterval  = time.Second / 30
	DefaultFinalSaveWait = 10 * time.Second
	DefaultCommandBuffer = 16
)

// Random event keys
const (
	EventFeast    = "feast"
	EventCozyNap  = "cozy_nap"
	EventLuckyDay = "lucky_day"
	EventBadDream = "bad_dream"
	EventZoomies  = "zoomies"
)

// Birth origins reported on hamster born events
const (
	OriginNewGame  = "new_game"
	OriginBreeding = "breeding"
)

// Purchase kinds reported on item purchased events
const (
	PurchaseAccessory = "accessory"
	PurchaseFood      = "food"
	PurchaseColor     = "color"
)

// Log messages
const (
	LogMsgGameStarted        = "New game started"
	LogMsgGameOver           = "Game over"
	LogMsgHamsterDied        = "Hamster died"
	LogMsgHamsterBorn        = "Hamster born"
	LogMsgRandomEvent        = "Random event"
	LogMsgAchievement        = "Achievement unlocked"
	LogMsgUpgradePurchased   = "Upgrade purchased"
	LogMsgPublishFailed      = "Event handler failed"
	LogMsgProfileLoaded      = "Profile loaded"
	LogMsgProfileMissing     = "No saved profile, starting fresh"
	LogMsgProfileLoadFailed  = "Failed to load profile, starting fresh"
	LogMsgSaveQueueFull      = "Save queue full, skipping autosave"
	LogMsgFinalSaveFailed    = "Final save failed"
	LogMsgFinalSaveCompleted = "Final save completed"
	LogMsgRunnerStarted      = "Habitat runner started"
	LogMsgRunnerStopped      = "Habitat runner stopped"
)

// Error messages
const (
	ErrMsgRunnerStopped   = "habitat runner stopped"
	ErrMsgHamsterFrozen   = "hamster is frozen"
	ErrMsgInvalidName     = "name must not be blank"
	ErrMsgNothingEquipped = "nothing worn in slot"
	ErrMsgAlreadyColor    = "hamster already has that color"
	ErrMsgUnknownAction   = "unknown action"
	ErrMsgMaxLevel        = "track is at max level"
)
