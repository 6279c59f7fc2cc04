package gifbot

import "strings"

// EventTypeMessage is the only event type the bot reacts to.
const EventTypeMessage = "message"

// ConversationKind says what a Conversation addresses.
type ConversationKind int

const (
	KindChannel ConversationKind = iota
	KindGroup
	KindDirectMessage
)

func (k ConversationKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindDirectMessage:
		return "dm"
	default:
		return "channel"
	}
}

// ConversationKindFromID guesses the kind of a conversation from the prefix
// Slack puts on its IDs.
func ConversationKindFromID(id string) ConversationKind {
	switch {
	case strings.HasPrefix(id, "D"):
		return KindDirectMessage
	case strings.HasPrefix(id, "G"):
		return KindGroup
	default:
		return KindChannel
	}
}

// Conversation is the handle a Session uses to address a channel, group or DM.
type Conversation struct {
	ID   string
	Name string
	Kind ConversationKind
}

// MessageEvent is an incoming message. An empty Text means the event carried none.
type MessageEvent struct {
	Type            string
	SubType         string
	Channel         string
	User            string
	BotID           string
	Text            string
	Timestamp       string
	ThreadTimestamp string
}

// User identifies the bot itself.
type User struct {
	ID   string
	Name string
}

// Team is the workspace the bot is connected to.
type Team struct {
	ID     string
	Name   string
	Domain string
}

// OpenEvent is delivered once a connection is established.
type OpenEvent struct {
	Self     User
	Team     Team
	Channels []Conversation // channels the bot is a member of
	Groups   []Conversation // open, unarchived private groups
	DMs      []Conversation // open direct messages
}
