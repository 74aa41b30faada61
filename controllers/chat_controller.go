package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/services"
)

type ChatController struct {
	chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

// GET /api/users/:id/chat?limit=
func (cc *ChatController) ListMessages(c *gin.Context) {
	userID, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cc.chat.History(userID, limitQuery(c)))
}

// POST /api/chat
// A user message comes back paired with the generated assistant reply;
// an assistant message comes back alone.
func (cc *ChatController) PostMessage(c *gin.Context) {
	var in models.InsertChatMessage
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msgs := cc.chat.Post(in)
	if len(msgs) == 1 {
		c.JSON(http.StatusCreated, msgs[0])
		return
	}
	c.JSON(http.StatusCreated, msgs)
}
