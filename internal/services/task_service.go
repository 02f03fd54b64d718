package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/hiratake/task-room-api/internal/models"
	"github.com/hiratake/task-room-api/internal/repository"
	"github.com/hiratake/task-room-api/internal/timeutil"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrTitleRequired  = errors.New("missing task title")
	ErrInvalidDueDate = errors.New("invalid due_date format, use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
	ErrNoUpdateData   = errors.New("no update data provided")
)

// TaskService handles task business logic within a room. Mutating
// operations are serialized so that concurrent creates in the same room
// each get their own ID; reads stay lock-free and last-write-wins.
type TaskService struct {
	mu    sync.Mutex
	rooms repository.RoomRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(rooms repository.RoomRepository) *TaskService {
	return &TaskService{rooms: rooms}
}

// TaskFilter holds the optional list filters. Both are case-insensitive
// and compose with logical AND.
type TaskFilter struct {
	Status   string
	Priority string
}

// CreateTaskInput represents input for creating a task. DueDate is the
// raw client string and is normalized before storage.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
}

// UpdateTaskInput represents a partial update. Nil fields are left
// untouched; ClearDueDate distinguishes an explicit null from an omitted
// due_date key.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Priority     *string
	Completed    *bool
	DueDate      *string
	ClearDueDate bool
}

// Empty reports whether the patch carries no changes at all.
func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Priority == nil &&
		in.Completed == nil && in.DueDate == nil && !in.ClearDueDate
}

// Stats summarizes a room's tasks.
type Stats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}

func (s *TaskService) findRoom(code string) (*models.Room, error) {
	room, err := s.rooms.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return room, nil
}

// ListTasks returns the room's tasks matching the filter, plus the
// unfiltered task count.
func (s *TaskService) ListTasks(roomCode string, filter TaskFilter) ([]models.Task, int, error) {
	room, err := s.findRoom(roomCode)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]models.Task, 0, len(room.Tasks))
	for _, task := range room.Tasks {
		if !matchesStatus(task, filter.Status) {
			continue
		}
		if !matchesPriority(task, filter.Priority) {
			continue
		}
		filtered = append(filtered, task)
	}

	return filtered, len(room.Tasks), nil
}

func matchesStatus(task models.Task, status string) bool {
	switch strings.ToLower(status) {
	case "completed":
		return task.Completed
	case "pending":
		return !task.Completed
	default:
		// Absent or unrecognized status filters pass everything through.
		return true
	}
}

func matchesPriority(task models.Task, priority string) bool {
	if priority == "" {
		return true
	}
	return strings.EqualFold(task.Priority, priority)
}

// CreateTask appends a new task to the room. The ID comes from the
// room's counter, so IDs freed by deletes are never handed out again.
func (s *TaskService) CreateTask(roomCode string, input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	dueDate, err := timeutil.NormalizeDueDate(input.DueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	priority := strings.ToLower(input.Priority)
	if priority == "" {
		priority = models.DefaultPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.findRoom(roomCode)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:          room.NextTaskID,
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     dueDate,
		Completed:   false,
		CompletedAt: nil,
		CreatedAt:   timeutil.Now(),
	}

	room.NextTaskID++
	room.Tasks = append(room.Tasks, task)

	if err := s.rooms.Save(room); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	return &task, nil
}

// UpdateTask applies a partial update to a task. Setting completed=true
// stamps completed_at only when it is not already set; completed=false
// always clears it.
func (s *TaskService) UpdateTask(roomCode string, taskID int, input UpdateTaskInput) (*models.Task, error) {
	if input.Empty() {
		return nil, ErrNoUpdateData
	}

	var dueDate *timeutil.Timestamp
	if input.DueDate != nil {
		normalized, err := timeutil.NormalizeDueDate(*input.DueDate)
		if err != nil || normalized == nil {
			return nil, ErrInvalidDueDate
		}
		dueDate = normalized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.findRoom(roomCode)
	if err != nil {
		return nil, err
	}

	task := room.FindTask(taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		priority := strings.ToLower(*input.Priority)
		if priority == "" {
			priority = models.DefaultPriority
		}
		task.Priority = priority
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
		if task.Completed {
			if task.CompletedAt == nil {
				now := timeutil.Now()
				task.CompletedAt = &now
			}
		} else {
			task.CompletedAt = nil
		}
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if dueDate != nil {
		task.DueDate = dueDate
	}

	if err := s.rooms.Save(room); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	return task, nil
}

// CompleteTask marks a task completed and stamps completed_at
// unconditionally, overwriting any earlier completion time. This is
// intentionally stronger than UpdateTask's completed=true handling.
func (s *TaskService) CompleteTask(roomCode string, taskID int) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.findRoom(roomCode)
	if err != nil {
		return nil, err
	}

	task := room.FindTask(taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}

	now := timeutil.Now()
	task.Completed = true
	task.CompletedAt = &now

	if err := s.rooms.Save(room); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task from the room and returns it. Remaining
// tasks keep their IDs.
func (s *TaskService) DeleteTask(roomCode string, taskID int) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.findRoom(roomCode)
	if err != nil {
		return nil, err
	}

	task := room.FindTask(taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}
	deleted := *task

	remaining := make([]models.Task, 0, len(room.Tasks)-1)
	for _, t := range room.Tasks {
		if t.ID != taskID {
			remaining = append(remaining, t)
		}
	}
	room.Tasks = remaining

	if err := s.rooms.Save(room); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	return &deleted, nil
}

// GetStats derives summary counts from a room's tasks.
func (s *TaskService) GetStats(roomCode string) (*Stats, error) {
	room, err := s.findRoom(roomCode)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(room.Tasks)}
	now := timeutil.Now()
	for _, task := range room.Tasks {
		if task.Completed {
			stats.Completed++
			continue
		}
		if task.DueDate != nil && task.DueDate.Before(now.Time) {
			stats.Overdue++
		}
	}
	stats.Pending = stats.Total - stats.Completed

	if stats.Total > 0 {
		rate := float64(stats.Completed) / float64(stats.Total) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}

	return stats, nil
}
