package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Hamster errors
	ErrMsgHamsterNotFound = "hamster not found"
	ErrMsgHamsterDead     = "hamster is dead"
	ErrMsgHamsterBusy     = "hamster is busy"

	// Breeding errors
	ErrMsgSameParent  = "a hamster cannot breed with itself"
	ErrMsgNotEligible = "hamster is not ready to breed"
	ErrMsgHabitatFull = "no free hamster slot"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgAlreadyOwned      = "already owned"
	ErrMsgNotOwned          = "accessory not owned"

	// Catalog errors
	ErrMsgUnknownAccessory = "unknown accessory"
	ErrMsgUnknownFood      = "unknown food"
	ErrMsgUnknownColor     = "unknown color"
	ErrMsgUnknownTrack     = "unknown upgrade track"
	ErrMsgUpgradeFailed    = "upgrade unavailable"

	// Session errors
	ErrMsgNoActiveRun   = "no active game"
	ErrMsgRunInProgress = "a game is already running"
	ErrMsgPoopNotFound  = "poop not found"

	// Storage errors
	ErrMsgProfileNotFound = "profile not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Hamster errors
	ErrHamsterNotFound = errors.New(ErrMsgHamsterNotFound)
	ErrHamsterDead     = errors.New(ErrMsgHamsterDead)
	ErrHamsterBusy     = errors.New(ErrMsgHamsterBusy)

	// Breeding errors
	ErrSameParent  = errors.New(ErrMsgSameParent)
	ErrNotEligible = errors.New(ErrMsgNotEligible)
	ErrHabitatFull = errors.New(ErrMsgHabitatFull)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrAlreadyOwned      = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned          = errors.New(ErrMsgNotOwned)

	// Catalog errors
	ErrUnknownAccessory = errors.New(ErrMsgUnknownAccessory)
	ErrUnknownFood      = errors.New(ErrMsgUnknownFood)
	ErrUnknownColor     = errors.New(ErrMsgUnknownColor)
	ErrUnknownTrack     = errors.New(ErrMsgUnknownTrack)
	ErrUpgradeFailed    = errors.New(ErrMsgUpgradeFailed)

	// Session errors
	ErrNoActiveRun   = errors.New(ErrMsgNoActiveRun)
	ErrRunInProgress = errors.New(ErrMsgRunInProgress)
	ErrPoopNotFound  = errors.New(ErrMsgPoopNotFound)

	// Storage errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
