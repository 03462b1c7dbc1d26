package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimtth/chatroom-api/internal/common"
)

type replyReq struct {
	ChatID string `json:"chat_id"`
	Msg    string `json:"msg"`
	Mode   string `json:"mode"`
}

// GenerateReply dispatches a new message to the mode-selected responder.
// Field presence is checked in the service so validation failures short-circuit
// before any storage access.
func (h *Handler) GenerateReply(c *gin.Context) {
	var req replyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json")
		return
	}

	reply, err := h.Svc.GenerateReply(c.Request.Context(), req.ChatID, req.Msg, req.Mode)
	if err != nil {
		h.failErr(c, err)
		return
	}
	common.OK(c, http.StatusOK, gin.H{"reply": reply})
}
