package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimtth/chatroom-api/internal/common"
)

// GetCodes lists the code entries for a category, cache-aside through Redis
// when configured.
func (h *Handler) GetCodes(c *gin.Context) {
	category := c.Param("category")
	ctx := c.Request.Context()

	if codes, ok := h.Codes.GetCodes(ctx, category); ok {
		common.OK(c, http.StatusOK, codes)
		return
	}

	codes, err := h.Svc.ListCodesByCategory(ctx, category)
	if err != nil {
		h.failErr(c, err)
		return
	}
	h.Codes.SetCodes(ctx, category, codes)
	common.OK(c, http.StatusOK, codes)
}
