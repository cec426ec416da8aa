package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// ErrMsgHandlerErrorFormat wraps the errors returned by subscribers
const ErrMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
