package handler

// User-facing error messages. They never expose internal error details.
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Request parsing messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidHamsterID      = "Invalid hamster ID"

	// Hamster messages
	ErrMsgHamsterNotFoundError = "Hamster not found"
	ErrMsgHamsterDeadError     = "That hamster has passed away"
	ErrMsgHamsterBusyError     = "Your hamster is busy. Try again in a moment"

	// Run messages
	ErrMsgNoActiveRunError   = "No game is running. Start a new game first"
	ErrMsgRunInProgressError = "A game is already running"
	ErrMsgPoopNotFoundError  = "Already cleaned up"

	// Breeding messages
	ErrMsgSameParentError  = "A hamster cannot breed with itself"
	ErrMsgNotEligibleError = "Both hamsters must be grown up, healthy and rested to breed"
	ErrMsgHabitatFullError = "The cage is full. Upgrade it to make room"

	// Shop and progression messages
	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgAlreadyOwnedError   = "You already own that"
	ErrMsgNotOwnedError       = "You don't own that accessory"
	ErrMsgUnknownItemError    = "No such item"
	ErrMsgMaxLevelError       = "That upgrade is already maxed out"
)

// Success messages
const (
	MsgActionStarted   = "Action started"
	MsgHamsterRenamed  = "Hamster renamed"
	MsgHamsterUpdated  = "Hamster updated"
	MsgPoopCleaned     = "Cleaned up"
	MsgItemPurchased   = "Purchased"
	MsgSaveQueued      = "Save queued"
	MsgGameStarted     = "New game started"
	MsgHamsterBred     = "A baby hamster was born"
	MsgUpgradePurchase = "Upgrade purchased"
	MsgEventTriggered  = "Event triggered"
)

// Log messages
const (
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgRequestValidated = "Request decoded"
)
