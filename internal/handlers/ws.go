package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/KyleAMathews/group-question-game/internal/services"
	"github.com/KyleAMathews/group-question-game/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub            *ws.Hub
	sessionService *services.SessionService
}

func NewWSHandler(hub *ws.Hub, sessionService *services.SessionService) *WSHandler {
	return &WSHandler{hub: hub, sessionService: sessionService}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket stream of session updates
// @Description  Every mutation is pushed as {type, token, data}. The first frame is a state snapshot so reconnecting clients catch up immediately.
// @Tags         websocket
// @Param        id path int true "Session ID"
// @Router       /ws/session/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	state, err := h.sessionService.PublicSession(uint(sessionID))
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade error: %v", err)
		return
	}

	sid := uint(sessionID)
	h.hub.AddConnection(sid, conn)
	defer h.hub.RemoveConnection(sid, conn)

	if err := conn.WriteJSON(ws.Message{Type: "state_snapshot", Data: state}); err != nil {
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
