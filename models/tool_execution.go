package models

import "time"

// ToolStatus is the outcome state of one tool invocation.
type ToolStatus string

const (
	ToolStarted ToolStatus = "started"
	ToolSuccess ToolStatus = "success"
	ToolError   ToolStatus = "error"
)

// ToolExecution records one invocation of an external tool, optionally tied
// to the message that triggered it.
type ToolExecution struct {
	ID           int64      `json:"id"`
	MessageID    int64      `json:"message_id,omitempty"`
	ToolName     string     `json:"tool_name"`
	Parameters   Metadata   `json:"parameters,omitempty"`
	Result       string     `json:"result,omitempty"`
	Status       ToolStatus `json:"status"`
	DurationMS   float64    `json:"duration_ms,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
