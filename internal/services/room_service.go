package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hiratake/task-room-api/internal/models"
	"github.com/hiratake/task-room-api/internal/repository"
	"github.com/hiratake/task-room-api/internal/timeutil"
	"github.com/hiratake/task-room-api/internal/utils"
)

var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrUsernameRequired     = errors.New("username is required")
	ErrRoomCodeRequired     = errors.New("room_code is required")
	ErrCodeGenerationFailed = errors.New("failed to generate room code")
)

// RoomService provides business logic for room operations.
type RoomService struct {
	rooms repository.RoomRepository
}

// NewRoomService creates a new RoomService.
func NewRoomService(rooms repository.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

// CreateRoom creates a room owned by the given user. The owner becomes
// the first member.
func (s *RoomService) CreateRoom(owner string) (*models.Room, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrUsernameRequired
	}

	code, err := utils.GenerateRoomCode(s.rooms.CodeExists)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodeGenerationFailed, err)
	}

	room := &models.Room{
		Code:       code,
		Owner:      owner,
		Members:    []string{owner},
		Tasks:      []models.Task{},
		CreatedAt:  timeutil.Now(),
		NextTaskID: 1,
	}

	if err := s.rooms.Create(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return room, nil
}

// GetRoom returns the room with the given code.
func (s *RoomService) GetRoom(code string) (*models.Room, error) {
	room, err := s.rooms.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return room, nil
}

// JoinRoom adds a user to a room's member list. Joining a room you are
// already in is a no-op.
func (s *RoomService) JoinRoom(code, username string) (*models.Room, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	room, err := s.GetRoom(code)
	if err != nil {
		return nil, err
	}

	if !room.HasMember(username) {
		room.Members = append(room.Members, username)
		if err := s.rooms.Save(room); err != nil {
			return nil, fmt.Errorf("failed to save room: %w", err)
		}
	}

	return room, nil
}
