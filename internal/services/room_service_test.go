package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hiratake/task-room-api/internal/repository"
)

type RoomServiceTestSuite struct {
	suite.Suite
	service *RoomService
}

func (suite *RoomServiceTestSuite) SetupTest() {
	suite.service = NewRoomService(repository.NewMemoryRoomRepository())
}

func (suite *RoomServiceTestSuite) TestCreateRoom() {
	room, err := suite.service.CreateRoom("Alice")
	suite.Require().NoError(err)

	suite.Len(room.Code, 6)
	suite.Equal("Alice", room.Owner)
	suite.Equal([]string{"Alice"}, room.Members)
	suite.Empty(room.Tasks)
	suite.False(room.CreatedAt.IsZero())
}

func (suite *RoomServiceTestSuite) TestCreateRoom_CodesAreUnique() {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room, err := suite.service.CreateRoom("Alice")
		suite.Require().NoError(err)
		suite.False(seen[room.Code], "duplicate code %s", room.Code)
		seen[room.Code] = true
	}
}

func (suite *RoomServiceTestSuite) TestCreateRoom_BlankUsername() {
	_, err := suite.service.CreateRoom("   ")
	suite.ErrorIs(err, ErrUsernameRequired)
}

func (suite *RoomServiceTestSuite) TestGetRoom_NotFound() {
	_, err := suite.service.GetRoom("NOSUCH")
	suite.ErrorIs(err, ErrRoomNotFound)
}

func (suite *RoomServiceTestSuite) TestJoinRoom() {
	room, err := suite.service.CreateRoom("Alice")
	suite.Require().NoError(err)

	joined, err := suite.service.JoinRoom(room.Code, "Bob")
	suite.Require().NoError(err)
	suite.Equal([]string{"Alice", "Bob"}, joined.Members)
}

func (suite *RoomServiceTestSuite) TestJoinRoom_Idempotent() {
	room, err := suite.service.CreateRoom("Alice")
	suite.Require().NoError(err)

	_, err = suite.service.JoinRoom(room.Code, "Bob")
	suite.Require().NoError(err)
	joined, err := suite.service.JoinRoom(room.Code, "Bob")
	suite.Require().NoError(err)

	suite.Equal([]string{"Alice", "Bob"}, joined.Members)
}

func (suite *RoomServiceTestSuite) TestJoinRoom_NotFound() {
	_, err := suite.service.JoinRoom("NOSUCH", "Bob")
	suite.ErrorIs(err, ErrRoomNotFound)
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}
