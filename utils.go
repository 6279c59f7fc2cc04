package gifbot

import (
	"regexp"
	"strings"
)

var (
	// <@U123456> or <@U123456|name>
	mentionRegex       = regexp.MustCompile(`<@([A-Z0-9]+)(?:\|[^>]*)?>`)
	directMentionRegex = regexp.MustCompile(`^<@[A-Z0-9]+(?:\|[^>]*)?>:?\s*`)
)

// StripDirectMention removes a leading mention (and an optional colon) from text.
func StripDirectMention(text string) string {
	return directMentionRegex.ReplaceAllString(text, "")
}

// WhoMentioned returns the IDs referenced in text, in order.
func WhoMentioned(text string) []string {
	var ids []string
	for _, m := range mentionRegex.FindAllStringSubmatch(text, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

// IsMention reports whether text references anybody.
func IsMention(text string) bool {
	return mentionRegex.MatchString(text)
}

// IsMentioned reports whether text references botID.
func IsMentioned(text, botID string) bool {
	if text == "" || botID == "" {
		return false
	}
	for _, id := range WhoMentioned(text) {
		if id == botID {
			return true
		}
	}
	return false
}

// IsDirectMessage reports whether evt was sent in a direct message.
func IsDirectMessage(evt *MessageEvent) bool {
	return evt != nil && ConversationKindFromID(evt.Channel) == KindDirectMessage
}

// IsDirectMention reports whether evt starts by addressing botID.
func IsDirectMention(evt *MessageEvent, botID string) bool {
	if evt == nil || botID == "" {
		return false
	}
	m := mentionRegex.FindStringSubmatchIndex(evt.Text)
	return m != nil && m[0] == 0 && evt.Text[m[2]:m[3]] == botID
}

// HasText reports whether evt carries any text at all.
func HasText(evt *MessageEvent) bool {
	return evt != nil && strings.TrimSpace(evt.Text) != ""
}
