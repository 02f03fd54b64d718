package models

import (
	"github.com/hiratake/task-room-api/internal/timeutil"
)

// Room is a shared workspace identified by a short code. It exclusively
// owns its tasks; in the durable backend the whole room is a single row
// with members and tasks stored as JSON columns.
type Room struct {
	Code      string             `gorm:"type:varchar(6);primarykey" json:"code"`
	Owner     string             `gorm:"type:varchar(255);not null" json:"owner"`
	Members   []string           `gorm:"serializer:json" json:"members"`
	Tasks     []Task             `gorm:"serializer:json" json:"tasks"`
	CreatedAt timeutil.Timestamp `json:"created_at"`

	// NextTaskID is a per-room counter. Deleted task IDs are never
	// reused and remaining tasks are never renumbered.
	NextTaskID int `gorm:"not null;default:1" json:"-"`
}

// HasMember reports whether username is already in the member list.
func (r *Room) HasMember(username string) bool {
	for _, m := range r.Members {
		if m == username {
			return true
		}
	}
	return false
}

// FindTask returns the task with the given ID, or nil.
func (r *Room) FindTask(id int) *Task {
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			return &r.Tasks[i]
		}
	}
	return nil
}
