package models

import "time"

// CompletionRequest is one user-triggered generation request. At most one is
// in flight at a time; superseded requests are dropped, not queued.
type CompletionRequest struct {
	ID          uint64 // Monotonic, assigned on acceptance
	Text        string
	Context     Context
	SubmittedAt time.Time
}

// CompletionResult is produced once per accepted request and delivered
// exactly once to the presentation layer.
type CompletionResult struct {
	RequestID uint64
	Text      string // May be empty when the model produced nothing, or on error
	Err       string // Empty on success
	QueryText string // The text the user selected
}

// ModelState is the lifecycle state of the local generation model.
type ModelState int

const (
	ModelUnloaded ModelState = iota
	ModelLoading
	ModelReady
	ModelFailed
)

func (s ModelState) String() string {
	switch s {
	case ModelUnloaded:
		return "unloaded"
	case ModelLoading:
		return "loading"
	case ModelReady:
		return "ready"
	case ModelFailed:
		return "failed"
	}
	return "unknown"
}

// ModelStatus pairs the lifecycle state with load progress (0-100, only
// meaningful while loading).
type ModelStatus struct {
	State    ModelState
	Progress int
	Err      string
}
