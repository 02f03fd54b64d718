package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hiratake/task-room-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// resolveRoomCode picks the room code from the ?room= query parameter,
// falling back to a code carried in the request body. Responds 400 and
// returns false when neither is present.
func resolveRoomCode(c *gin.Context, bodyCode string) (string, bool) {
	code := normalizeRoomCode(c.Query("room"))
	if code == "" {
		code = normalizeRoomCode(bodyCode)
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room is required. Provide ?room=ROOM_CODE or body.room_code"})
		return "", false
	}
	return code, true
}

func (h *TaskHandler) respondError(c *gin.Context, roomCode string, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		roomNotFound(c, roomCode)
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, services.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing task title"})
	case errors.Is(err, services.ErrInvalidDueDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date format. Use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS"})
	case errors.Is(err, services.ErrNoUpdateData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update data provided"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ListTasks returns a room's tasks, optionally filtered by status and
// priority. Filters compose with AND.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	roomCode, ok := resolveRoomCode(c, "")
	if !ok {
		return
	}

	filter := services.TaskFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	tasks, totalAll, err := h.taskService.ListTasks(roomCode, filter)
	if err != nil {
		h.respondError(c, roomCode, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":     tasks,
		"total":     len(tasks),
		"total_all": totalAll,
	})
}

// CreateTask creates a new task in a room.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		DueDate     string `json:"due_date"`
		RoomCode    string `json:"room_code"`
	}

	var req CreateTaskRequest
	_ = c.ShouldBindJSON(&req)

	roomCode, ok := resolveRoomCode(c, req.RoomCode)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(roomCode, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.respondError(c, roomCode, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    task,
	})
}

// UpdateTask applies a partial update to a task. Only keys present in
// the body are touched; due_date set to null clears it.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var raw map[string]any
	_ = c.ShouldBindJSON(&raw)

	bodyCode, _ := raw["room_code"].(string)
	roomCode, ok := resolveRoomCode(c, bodyCode)
	if !ok {
		return
	}

	input := services.UpdateTaskInput{}
	if title, ok := raw["title"].(string); ok {
		input.Title = &title
	}
	if description, ok := raw["description"].(string); ok {
		input.Description = &description
	}
	if _, ok := raw["priority"]; ok {
		priority, _ := raw["priority"].(string)
		input.Priority = &priority
	}
	if completed, ok := raw["completed"].(bool); ok {
		input.Completed = &completed
	}
	if _, ok := raw["due_date"]; ok {
		if raw["due_date"] == nil {
			input.ClearDueDate = true
		} else if dueDate, ok := raw["due_date"].(string); ok {
			input.DueDate = &dueDate
		}
	}

	task, err := h.taskService.UpdateTask(roomCode, taskID, input)
	if err != nil {
		h.respondError(c, roomCode, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    task,
	})
}

// DeleteTask removes a task. Remaining task IDs are not renumbered.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	roomCode, ok := resolveRoomCode(c, "")
	if !ok {
		return
	}

	task, err := h.taskService.DeleteTask(roomCode, taskID)
	if err != nil {
		h.respondError(c, roomCode, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Task deleted successfully",
		"deleted_task": task,
	})
}

// CompleteTask marks a task completed, overwriting any earlier
// completion timestamp.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	roomCode, ok := resolveRoomCode(c, "")
	if !ok {
		return
	}

	task, err := h.taskService.CompleteTask(roomCode, taskID)
	if err != nil {
		h.respondError(c, roomCode, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task marked as completed",
		"task":    task,
	})
}

// GetStats returns summary counts for a room.
func (h *TaskHandler) GetStats(c *gin.Context) {
	roomCode, ok := resolveRoomCode(c, "")
	if !ok {
		return
	}

	stats, err := h.taskService.GetStats(roomCode)
	if err != nil {
		h.respondError(c, roomCode, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
