package worker

import "time"

// DefaultJobTimeout bounds a single job's context
const DefaultJobTimeout = 10 * time.Second

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Save Job
// ============================================================================

// Log messages for profile save operations
const (
	LogMsgProfileSaved = "Profile saved"
)

// Error Messages
const (
	ErrMsgSaveFailed = "failed to save profile"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
