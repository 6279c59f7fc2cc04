package rtm

import (
	"github.com/slack-go/slack"

	"github.com/flw-cn/go-gifbot"
)

func convertMessage(ev *slack.MessageEvent) *gifbot.MessageEvent {
	return &gifbot.MessageEvent{
		Type:            ev.Type,
		SubType:         ev.SubType,
		Channel:         ev.Channel,
		User:            ev.User,
		BotID:           ev.BotID,
		Text:            ev.Text,
		Timestamp:       ev.Timestamp,
		ThreadTimestamp: ev.ThreadTimestamp,
	}
}

// splitConversations sorts the conversations the bot belongs to into
// channels, private groups and DMs, leaving out archived ones.
func splitConversations(channels []slack.Channel) (chans, groups, dms []gifbot.Conversation) {
	for _, c := range channels {
		if c.IsArchived {
			continue
		}
		switch {
		case c.IsIM:
			// DMs have no name, the other user is the best label we have.
			dms = append(dms, gifbot.Conversation{ID: c.ID, Name: c.User, Kind: gifbot.KindDirectMessage})
		case c.IsMpIM || c.IsGroup || c.IsPrivate:
			groups = append(groups, gifbot.Conversation{ID: c.ID, Name: c.Name, Kind: gifbot.KindGroup})
		default:
			chans = append(chans, gifbot.Conversation{ID: c.ID, Name: c.Name, Kind: gifbot.KindChannel})
		}
	}
	return chans, groups, dms
}
