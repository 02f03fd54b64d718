package repository

import (
	"errors"

	"github.com/hiratake/task-room-api/internal/models"
	"gorm.io/gorm"
)

// GormRoomRepository is a GORM implementation of RoomRepository backed by
// a single rooms table. Members and tasks live in JSON columns, so every
// Save writes the full room state through.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new RoomRepository on top of db.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// Create persists a new room.
func (r *GormRoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

// FindByCode finds a room by its exact code.
func (r *GormRoomRepository) FindByCode(code string) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if room.Tasks == nil {
		room.Tasks = []models.Task{}
	}
	return &room, nil
}

// Save writes a mutated room through to the table.
func (r *GormRoomRepository) Save(room *models.Room) error {
	return r.db.Save(room).Error
}

// CodeExists reports whether a room code is already taken.
func (r *GormRoomRepository) CodeExists(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Room{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
