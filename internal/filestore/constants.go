package filestore

// File layout
const (
	FileExt     = ".toml"
	TempFileExt = ".tmp"
	DirPerm     = 0755
	FilePerm    = 0644
)

// Error Messages
const (
	ErrMsgInvalidProfileID  = "invalid profile id"
	ErrMsgFailedToRead      = "failed to read profile"
	ErrMsgFailedToDecode    = "failed to decode profile"
	ErrMsgFailedToEncode    = "failed to encode profile"
	ErrMsgFailedToWrite     = "failed to write profile"
	ErrMsgFailedToCreateDir = "failed to create save directory"
	ErrMsgFailedToList      = "failed to list profiles"
)
