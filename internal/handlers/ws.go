package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Kumarankit101/Forms/internal/services"
	"github.com/Kumarankit101/Forms/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	formService *services.FormService
	hub         *ws.Hub
}

func NewWSHandler(formService *services.FormService, hub *ws.Hub) *WSHandler {
	return &WSHandler{formService: formService, hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleFormFeed godoc
// @Summary      Live response feed
// @Description  WebSocket stream of response.created events for an owned form
// @Tags         websocket
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Router       /ws/forms/{id} [get]
func (h *WSHandler) HandleFormFeed(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form id"})
		return
	}

	form, err := h.formService.GetFormByID(uint(formID))
	if err != nil {
		respondError(c, err)
		return
	}
	if form.UserID != userID {
		respondError(c, services.ErrForbidden)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	fid := uint(formID)
	h.hub.AddConnection(fid, conn)
	defer h.hub.RemoveConnection(fid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
