package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hiratake/task-room-api/internal/config"
	"github.com/hiratake/task-room-api/internal/database"
	"github.com/hiratake/task-room-api/internal/handlers"
	"github.com/hiratake/task-room-api/internal/repository"
	"github.com/hiratake/task-room-api/internal/services"
)

func main() {
	cfg := config.Load()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	gin.SetMode(cfg.GinMode)

	// Pick the storage backend explicitly. A database backend that
	// cannot be reached is fatal; there is no silent fallback to memory.
	var roomRepo repository.RoomRepository
	switch cfg.StorageBackend {
	case config.StorageMemory:
		roomRepo = repository.NewMemoryRoomRepository()
		logrus.Info("using in-memory storage")
	case config.StorageDatabase:
		db, err := database.Connect(cfg)
		if err != nil {
			logrus.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		roomRepo = repository.NewGormRoomRepository(db)
		logrus.WithField("driver", cfg.DBDriver).Info("using database storage")
	default:
		logrus.Fatalf("Unknown storage backend %q", cfg.StorageBackend)
	}

	roomService := services.NewRoomService(roomRepo)
	taskService := services.NewTaskService(roomRepo)

	r := handlers.NewRouter(roomService, taskService)

	addr := ":" + cfg.ServerPort
	logrus.WithField("addr", addr).Info("server starting")
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
