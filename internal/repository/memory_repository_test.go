package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiratake/task-room-api/internal/models"
	"github.com/hiratake/task-room-api/internal/timeutil"
)

func newTestRoom(code string) *models.Room {
	return &models.Room{
		Code:       code,
		Owner:      "Alice",
		Members:    []string{"Alice"},
		Tasks:      []models.Task{},
		CreatedAt:  timeutil.Now(),
		NextTaskID: 1,
	}
}

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryRoomRepository()
	room := newTestRoom("ABC123")

	require.NoError(t, repo.Create(room))

	found, err := repo.FindByCode("ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", found.Code)
	assert.Equal(t, "Alice", found.Owner)
}

func TestMemoryRepository_FindMissing(t *testing.T) {
	repo := NewMemoryRoomRepository()

	_, err := repo.FindByCode("NOSUCH")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestMemoryRepository_LookupIsExact(t *testing.T) {
	repo := NewMemoryRoomRepository()
	require.NoError(t, repo.Create(newTestRoom("ABC123")))

	_, err := repo.FindByCode("abc123")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestMemoryRepository_CodeExists(t *testing.T) {
	repo := NewMemoryRoomRepository()
	require.NoError(t, repo.Create(newTestRoom("ABC123")))

	exists, err := repo.CodeExists("ABC123")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CodeExists("XYZ789")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryRepository_SaveWritesThrough(t *testing.T) {
	repo := NewMemoryRoomRepository()
	room := newTestRoom("ABC123")
	require.NoError(t, repo.Create(room))

	room.Members = append(room.Members, "Bob")
	require.NoError(t, repo.Save(room))

	found, err := repo.FindByCode("ABC123")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, found.Members)
}
