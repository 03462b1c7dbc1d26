package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kimtth/chatroom-api/internal/config"
	"github.com/kimtth/chatroom-api/internal/httpapi/handlers"
	"github.com/kimtth/chatroom-api/internal/httpapi/middleware"
	"github.com/kimtth/chatroom-api/internal/store/redisstore"
)

func NewRouter(gdb *gorm.DB, cfg *config.Config, cache *redisstore.Store, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.Default())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	h := handlers.NewHandler(gdb, cfg, cache, logger)

	r.GET("/", h.Health)

	api := r.Group("/api")
	api.GET("/", h.Health)

	api.GET("/code/:category", h.GetCodes)

	api.POST("/chat", h.CreateRoom)
	api.GET("/chat", h.ListRooms)
	api.GET("/chat/:chat_id", h.GetRoom)
	api.PUT("/chat/:chat_id", h.UpdateRoom)
	api.DELETE("/chat/:chat_id", h.DeleteRoom)

	api.POST("/chat/:chat_id/message", h.AppendMessage)
	api.GET("/chat/:chat_id/message", h.ListMessages)

	api.POST("/chat/response", h.GenerateReply)

	return r
}
