package services

import (
	"testing"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/storage"
)

func newChatService() (*ChatService, storage.Storage) {
	store := storage.NewMemStorage()
	return NewChatService(store, NewNutritionist(), NewRealtimeHub()), store
}

func TestPostUserMessageReturnsPair(t *testing.T) {
	svc, store := newChatService()

	msgs := svc.Post(models.InsertChatMessage{UserID: 1, Content: "hello", IsUserMessage: true})
	if len(msgs) != 2 {
		t.Fatalf("want stored message plus reply, got %d messages", len(msgs))
	}
	if !msgs[0].IsUserMessage || msgs[1].IsUserMessage {
		t.Errorf("pair order wrong: %+v", msgs)
	}
	if msgs[1].Content == "" {
		t.Error("assistant reply is empty")
	}

	if history := store.GetChatMessages(1, 0); len(history) != 2 {
		t.Errorf("both messages should be persisted, found %d", len(history))
	}
}

func TestPostAssistantMessageReturnsSingle(t *testing.T) {
	svc, store := newChatService()

	msgs := svc.Post(models.InsertChatMessage{UserID: 1, Content: "Welcome!", IsUserMessage: false})
	if len(msgs) != 1 {
		t.Fatalf("assistant message should not trigger a reply, got %d", len(msgs))
	}
	if history := store.GetChatMessages(1, 0); len(history) != 1 {
		t.Errorf("want a single stored message, found %d", len(history))
	}
}
