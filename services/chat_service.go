package services

import (
	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/storage"
)

// ChatService stores conversation entries and, for user messages,
// produces the nutritionist's reply as part of the same request.
type ChatService struct {
	store storage.Storage
	bot   *Nutritionist
	hub   *RealtimeHub
}

func NewChatService(store storage.Storage, bot *Nutritionist, hub *RealtimeHub) *ChatService {
	return &ChatService{store: store, bot: bot, hub: hub}
}

func (s *ChatService) History(userID, limit int) []models.ChatMessage {
	return s.store.GetChatMessages(userID, limit)
}

// Post stores the message. A user message additionally gets an
// assistant reply generated and stored; both are returned in order.
// Every stored message is broadcast to the user's open connections.
func (s *ChatService) Post(in models.InsertChatMessage) []models.ChatMessage {
	msg := s.store.AddChatMessage(in)
	s.publish(msg)

	if !msg.IsUserMessage {
		return []models.ChatMessage{msg}
	}

	reply := s.store.AddChatMessage(models.InsertChatMessage{
		UserID:        in.UserID,
		Content:       s.bot.Reply(in.Content),
		IsUserMessage: false,
	})
	s.publish(reply)

	return []models.ChatMessage{msg, reply}
}

func (s *ChatService) publish(msg models.ChatMessage) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(msg.UserID, map[string]any{
		"kind":    "chat.message",
		"message": msg,
	})
}
