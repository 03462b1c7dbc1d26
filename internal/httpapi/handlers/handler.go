package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kimtth/chatroom-api/internal/ai"
	"github.com/kimtth/chatroom-api/internal/chat"
	"github.com/kimtth/chatroom-api/internal/common"
	"github.com/kimtth/chatroom-api/internal/config"
	"github.com/kimtth/chatroom-api/internal/store/redisstore"
)

type Handler struct {
	Svc   *chat.Service
	Codes *redisstore.Store
	Log   *zap.Logger
}

func NewHandler(gdb *gorm.DB, cfg *config.Config, cache *redisstore.Store, logger *zap.Logger) *Handler {
	repo := chat.NewRepo(gdb)

	reg := ai.NewRegistry()
	reg.Register(string(chat.ModeGPT), func(ctx context.Context) (ai.Responder, error) {
		return ai.NewOpenAIResponder(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel,
			time.Duration(cfg.ReplyTimeoutSeconds)*time.Second), nil
	})
	reg.Register(string(chat.ModePlanning), func(ctx context.Context) (ai.Responder, error) {
		return ai.NewPlanner(), nil
	})

	svc := chat.NewService(repo, reg, time.Duration(cfg.ReplyTimeoutSeconds)*time.Second)
	return &Handler{Svc: svc, Codes: cache, Log: logger}
}

// failErr maps service errors to status codes; anything outside the taxonomy
// is a 500 carrying the underlying message.
func (h *Handler) failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrInvalidRequest):
		common.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrNotFound):
		common.Fail(c, http.StatusNotFound, "chat not found")
	case errors.Is(err, chat.ErrDuplicateID):
		common.Fail(c, http.StatusConflict, "duplicate id")
	default:
		h.Log.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		common.Fail(c, http.StatusInternalServerError, err.Error())
	}
}
