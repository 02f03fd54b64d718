package repository

import (
	"errors"

	"github.com/hiratake/task-room-api/internal/models"
)

// ErrRoomNotFound is returned when a room code does not resolve to a room.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepository defines the interface for room data access. Rooms own
// their tasks, so task mutations go through Save on the whole room.
type RoomRepository interface {
	// Create persists a new room.
	Create(room *models.Room) error

	// FindByCode finds a room by its exact code.
	FindByCode(code string) (*models.Room, error)

	// Save writes a mutated room through to the backing store.
	Save(room *models.Room) error

	// CodeExists reports whether a room code is already taken.
	CodeExists(code string) (bool, error)
}
