package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mariotoorrees/iPowerLab/services"
)

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // dev setup; tighten behind a proxy
}

// GET /ws/chat?userId=1
// Streams chat events for the user until the client disconnects.
func (rc *RealtimeController) ChatWS(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := services.NewWSClient(userID, conn)
	rc.hub.Register(cl)

	// keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.hub.Unregister(cl)
			return
		}
	}
}
