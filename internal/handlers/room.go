package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hiratake/task-room-api/internal/services"
)

type RoomHandler struct {
	roomService *services.RoomService
}

func NewRoomHandler(roomService *services.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoom creates a new room owned by the requesting user.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	type CreateRoomRequest struct {
		Username string `json:"username"`
	}

	var req CreateRoomRequest
	_ = c.ShouldBindJSON(&req)

	room, err := h.roomService.CreateRoom(req.Username)
	if err != nil {
		if errors.Is(err, services.ErrUsernameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "room created",
		"room_code": room.Code,
		"room":      room,
	})
}

// GetRoom returns room details including members and tasks.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	code := normalizeRoomCode(c.Param("code"))

	room, err := h.roomService.GetRoom(code)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			roomNotFound(c, code)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch room"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// JoinRoomByCode joins the room named in the URL path.
func (h *RoomHandler) JoinRoomByCode(c *gin.Context) {
	type JoinRequest struct {
		Username string `json:"username"`
	}

	var req JoinRequest
	_ = c.ShouldBindJSON(&req)

	h.join(c, normalizeRoomCode(c.Param("code")), req.Username)
}

// JoinRoom joins the room named in the request body.
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	type JoinRequest struct {
		Username string `json:"username"`
		RoomCode string `json:"room_code"`
	}

	var req JoinRequest
	_ = c.ShouldBindJSON(&req)

	code := normalizeRoomCode(req.RoomCode)
	if strings.TrimSpace(req.Username) == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and room_code are required"})
		return
	}

	h.join(c, code, req.Username)
}

func (h *RoomHandler) join(c *gin.Context, code, username string) {
	room, err := h.roomService.JoinRoom(code, username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		case errors.Is(err, services.ErrRoomNotFound):
			roomNotFound(c, code)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join room"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "joined room",
		"room_code": room.Code,
		"room":      room,
	})
}

// normalizeRoomCode uppercases client-supplied codes; generated codes are
// always uppercase and lookups are exact.
func normalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func roomNotFound(c *gin.Context, code string) {
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("room '%s' not found", code)})
}
