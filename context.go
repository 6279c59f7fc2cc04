package gifbot

import (
	"context"
)

// key is unexported so other packages cannot access these keys directly or by mimicking their values.
// This ensures that messages and bots can only be added to or retrieved from the context via these functions.
type key int

const (
	botContextKey key = iota
	messageContextKey
)

// BotFromContext returns the Bot stored in ctx, or nil
func BotFromContext(ctx context.Context) *Bot {
	if result, ok := ctx.Value(botContextKey).(*Bot); ok {
		return result
	}
	return nil
}

// AddBotToContext sets the bot reference in context and returns the newly derived context
func AddBotToContext(ctx context.Context, bot *Bot) context.Context {
	return context.WithValue(ctx, botContextKey, bot)
}

// MessageFromContext gets the message from the provided context
func MessageFromContext(ctx context.Context) *MessageEvent {
	if result, ok := ctx.Value(messageContextKey).(*MessageEvent); ok {
		return result
	}
	return nil
}

// AddMessageToContext sets the message event reference in context and returns the newly derived context
func AddMessageToContext(ctx context.Context, msg *MessageEvent) context.Context {
	return context.WithValue(ctx, messageContextKey, msg)
}
