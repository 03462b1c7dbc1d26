package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimtth/chatroom-api/internal/common"
)

type createRoomReq struct {
	ID     string `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Prompt string `json:"prompt"`
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "id and name are required")
		return
	}

	room, err := h.Svc.CreateRoom(c.Request.Context(), req.ID, req.Name, req.Prompt)
	if err != nil {
		h.failErr(c, err)
		return
	}
	common.OK(c, http.StatusOK, room)
}

// roomSummary is the shallow listing shape: room fields without messages.
type roomSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.Svc.ListRooms(c.Request.Context())
	if err != nil {
		h.failErr(c, err)
		return
	}
	out := make([]roomSummary, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomSummary{
			ID:        r.ID,
			Name:      r.Name,
			Prompt:    r.Prompt,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	common.OK(c, http.StatusOK, out)
}

func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.Svc.GetRoom(c.Request.Context(), c.Param("chat_id"))
	if err != nil {
		h.failErr(c, err)
		return
	}
	common.OK(c, http.StatusOK, room)
}

type updateRoomReq struct {
	Name   string `json:"name" binding:"required"`
	Prompt string `json:"prompt"`
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	var req updateRoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "name is required")
		return
	}

	room, err := h.Svc.UpdateRoom(c.Request.Context(), c.Param("chat_id"), req.Name, req.Prompt)
	if err != nil {
		h.failErr(c, err)
		return
	}
	common.OK(c, http.StatusOK, room)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.Svc.DeleteRoom(c.Request.Context(), c.Param("chat_id")); err != nil {
		h.failErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createMessageReq struct {
	ID      string `json:"id" binding:"required"`
	FromWho string `json:"from_who" binding:"required"`
	Msg     string `json:"msg" binding:"required"`
}

func (h *Handler) AppendMessage(c *gin.Context) {
	var req createMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "id, from_who and msg are required")
		return
	}

	msg, err := h.Svc.AppendMessage(c.Request.Context(), c.Param("chat_id"), req.ID, req.FromWho, req.Msg)
	if err != nil {
		h.failErr(c, err)
		return
	}
	common.OK(c, http.StatusOK, msg)
}

func (h *Handler) ListMessages(c *gin.Context) {
	msgs, err := h.Svc.ListMessages(c.Request.Context(), c.Param("chat_id"))
	if err != nil {
		h.failErr(c, err)
		return
	}
	common.OK(c, http.StatusOK, msgs)
}
