package repository

import (
	"sync"

	"github.com/hiratake/task-room-api/internal/models"
)

// MemoryRoomRepository is an in-process implementation of RoomRepository.
// The mutex only guards the map itself; callers that load a room and
// mutate it concurrently still race last-write-wins, which is the
// accepted consistency model of this service.
type MemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room
}

// NewMemoryRoomRepository creates an empty in-memory repository.
func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{
		rooms: make(map[string]*models.Room),
	}
}

// Create persists a new room.
func (r *MemoryRoomRepository) Create(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.Code] = room
	return nil
}

// FindByCode finds a room by its exact code. The returned pointer is the
// live record, so mutations become visible before Save.
func (r *MemoryRoomRepository) FindByCode(code string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Save re-indexes the room. For the memory backend this is what makes
// rooms loaded from elsewhere (for instance a cache fill) authoritative.
func (r *MemoryRoomRepository) Save(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.Code] = room
	return nil
}

// CodeExists reports whether a room code is already taken.
func (r *MemoryRoomRepository) CodeExists(code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[code]
	return ok, nil
}
