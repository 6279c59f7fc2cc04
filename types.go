package gifbot

import (
	"context"
)

// MessageType represents a message type
type MessageType int

const (
	DirectMessage MessageType = iota // someone message me one by one
	DirectMention                    // someone mention me at the start of a message
	Message                          // normal message, just like channel chat message
	Mention                          // someone mention me anywhere in a Message
)

// Handler is a handler
type Handler func(context.Context)

// MessageHandler is a message handler
type MessageHandler func(ctx context.Context, bot *Bot, msg *MessageEvent)

// Matcher type for matching message routes
type Matcher interface {
	Match(context.Context) (bool, context.Context)
	SetBotID(botID string)
}
