package gifbot

import "context"

// OpenHandler is called when a Session connects.
type OpenHandler func(evt *OpenEvent)

// EventHandler is called for each incoming message, in arrival order.
type EventHandler func(evt *MessageEvent)

// Sender sends replies. Send is fire and forget: delivery failures are the
// Session's to report.
type Sender interface {
	Send(conv Conversation, text string)
	ResolveConversation(id string) Conversation
}

// Session is a connection to the messaging platform.
//
// Handlers are invoked synchronously from the goroutine running Run, so a
// slow handler delays the events behind it.
type Session interface {
	Sender
	OnOpen(h OpenHandler)
	OnMessage(h EventHandler)
	Run(ctx context.Context) error
}
