// Package gifbot is a small Slack bot that answers mentions with a random
// entry from a list of URLs whenever the message contains a trigger phrase.
//
// Incoming messages are mapped to a handler in a mux-router style:
//	bot.Messages(gifbot.Mention).Hear("(?i)how are you(.*)").MessageHandler(HowAreYouHandler)
//
// Trigger rules are registered with Respond:
//	bot.Respond(gifbot.TriggerRule{
//		Phrase:     "erlich",
//		Candidates: []string{"http://giphy.com/gifs/hit-beat-ptDRdwFkFVAkg"},
//	})
//
// The bot never talks to Slack directly. It is driven by a Session, which
// delivers message and open events and sends replies:
//	func HowAreYouHandler(ctx context.Context, bot *gifbot.Bot, evt *gifbot.MessageEvent) {
//		bot.Reply(evt, "A bit tired. You get it? A bit?")
//	}
package gifbot
