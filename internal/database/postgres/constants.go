package postgres

import "time"

// Cache settings
const (
	// CacheSchemaVersion is the version of cached profile documents.
	// Increment this when the cached data structure changes to auto-invalidate old entries
	CacheSchemaVersion = "1.0"
	DefaultCacheSize   = 64
	DefaultCacheTTL    = 5 * time.Minute
	DefaultHistorySize = 20
)

// SQL statements
const (
	queryLoadProfile = `SELECT document FROM profiles WHERE profile_id = $1`

	queryUpsertProfile = `
		INSERT INTO profiles (profile_id, version, seeds, run_active, document, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (profile_id) DO UPDATE SET
			version    = EXCLUDED.version,
			seeds      = EXCLUDED.seeds,
			run_active = EXCLUDED.run_active,
			document   = EXCLUDED.document,
			updated_at = NOW()`

	queryListProfiles = `SELECT profile_id FROM profiles ORDER BY profile_id`

	queryInsertRun = `
		INSERT INTO run_history (run_id, profile_id, hamsters_raised, coins_left, seeds_earned, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	queryRecentRuns = `
		SELECT run_id, hamsters_raised, coins_left, seeds_earned, ended_at
		FROM run_history
		WHERE profile_id = $1
		ORDER BY ended_at DESC
		LIMIT $2`
)

// Error Messages
const (
	ErrMsgFailedToLoadProfile   = "failed to load profile"
	ErrMsgFailedToDecodeProfile = "failed to decode profile"
	ErrMsgFailedToEncodeProfile = "failed to encode profile"
	ErrMsgFailedToSaveProfile   = "failed to save profile"
	ErrMsgFailedToListProfiles  = "failed to list profiles"
	ErrMsgFailedToRecordRun     = "failed to record run"
	ErrMsgFailedToQueryRuns     = "failed to query run history"
)

// Log Messages
const (
	LogMsgProfileCacheHit = "Profile cache hit"
	LogMsgRunRecorded     = "Run recorded"
	LogMsgRunDropped      = "Run history queue full, dropping record"
)
