package entity

import "fmt"

// MessageAction is one call-to-action button attached to a message.
type MessageAction struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Message is a built notification, ready for any dispatcher.
type Message struct {
	Title   string          `json:"title"`
	Body    string          `json:"body"`
	Actions []MessageAction `json:"actions,omitempty"`
}

// DispatchResult is the outcome of one channel send. Failures are carried
// here instead of propagating so one channel cannot abort the others.
type DispatchResult struct {
	Success bool
	Err     error
}

// Succeed returns a successful dispatch result.
func Succeed() *DispatchResult {
	return &DispatchResult{Success: true}
}

// Fail returns a failed dispatch result wrapping err.
func Fail(err error) *DispatchResult {
	return &DispatchResult{Err: err}
}

// Failf returns a failed dispatch result with a formatted error.
func Failf(format string, args ...any) *DispatchResult {
	return &DispatchResult{Err: fmt.Errorf(format, args...)}
}
