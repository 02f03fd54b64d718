package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiratake/task-room-api/internal/middleware"
	"github.com/hiratake/task-room-api/internal/services"
)

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(roomService *services.RoomService, taskService *services.TaskService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	roomHandler := NewRoomHandler(roomService)
	taskHandler := NewTaskHandler(taskService)
	healthHandler := NewHealthHandler()

	r.GET("/health", healthHandler.Health)
	r.GET("/api", func(c *gin.Context) {
		c.String(http.StatusOK, "Task Manager API - Use /rooms and /tasks endpoints")
	})

	rooms := r.Group("/rooms")
	{
		rooms.POST("", roomHandler.CreateRoom)
		rooms.POST("/join", roomHandler.JoinRoom)
		rooms.GET("/:code", roomHandler.GetRoom)
		rooms.POST("/:code/join", roomHandler.JoinRoomByCode)
	}

	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/stats", taskHandler.GetStats)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.POST("/:id/complete", taskHandler.CompleteTask)
	}

	return r
}
