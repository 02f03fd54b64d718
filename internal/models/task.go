package models

import (
	"github.com/hiratake/task-room-api/internal/timeutil"
)

// DefaultPriority is assigned when a task is created without one. The
// priority field is an open string by design; "low", "medium" and "high"
// are conventions, not an enum.
const DefaultPriority = "medium"

// Task is a unit of work inside a room. Tasks never exist outside their
// owning room and their IDs are only unique within it.
type Task struct {
	ID          int                 `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    string              `json:"priority"`
	DueDate     *timeutil.Timestamp `json:"due_date"`
	Completed   bool                `json:"completed"`
	CompletedAt *timeutil.Timestamp `json:"completed_at"`
	CreatedAt   timeutil.Timestamp  `json:"created_at"`
}
