package models

import "time"

// ChatMessage is one entry of the nutritionist conversation log.
type ChatMessage struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Content       string    `json:"content"`
	IsUserMessage bool      `json:"isUserMessage"`
	Timestamp     time.Time `json:"timestamp"`
}

type InsertChatMessage struct {
	UserID        int    `json:"userId" binding:"required"`
	Content       string `json:"content" binding:"required"`
	IsUserMessage bool   `json:"isUserMessage"`
}
