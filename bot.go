package gifbot

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
)

// BotOption is a functional option for configuring the bot
type BotOption func(*Bot) error

// WithLogger sets the logger to use
func WithLogger(l *log.Logger) BotOption {
	return func(b *Bot) error {
		b.SetLogger(l)
		return nil
	}
}

// WithSession sets the session the bot reads from and replies through
func WithSession(s Session) BotOption {
	return func(b *Bot) error {
		b.session = s
		return nil
	}
}

// WithRules registers a responder route for each rule, in order
func WithRules(rules ...TriggerRule) BotOption {
	return func(b *Bot) error {
		if err := ValidateRules(rules); err != nil {
			return err
		}
		for _, rule := range rules {
			if err := b.Respond(rule); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewWithOpts creates a new bot with options
func NewWithOpts(opts ...BotOption) (*Bot, error) {
	b := &Bot{}
	for _, opt := range opts {
		err := opt(b)
		if err != nil {
			return nil, err
		}
	}
	if b.session == nil {
		return nil, errors.New("gifbot: no session configured")
	}
	if b.logger == nil {
		b.logger = log.New()
	}
	return b, nil
}

// Bot is a bot
type Bot struct {
	SimpleRouter
	// Slack UserID of the bot
	botUserID string
	// logger instance
	logger  *log.Logger
	session Session
}

// Run installs the bot's handlers on its session and blocks until the
// session stops.
func (b *Bot) Run(ctx context.Context) error {
	b.session.OnOpen(b.handleOpen)
	b.session.OnMessage(func(evt *MessageEvent) {
		b.handleMessage(ctx, evt)
	})
	return b.session.Run(ctx)
}

func (b *Bot) handleOpen(evt *OpenEvent) {
	b.setBotID(evt.Self.ID)

	b.logger.WithField("team", evt.Team.Name).Infof("Welcome to Slack. You are %s of %s", evt.Self.Name, evt.Team.Name)

	if len(evt.Channels) > 0 {
		b.logger.Infof("You are in: %s", conversationNames(evt.Channels))
	} else {
		b.logger.Info("You are not in any channels.")
	}

	if len(evt.Groups) > 0 {
		b.logger.Infof("As well as: %s", conversationNames(evt.Groups))
	}

	if len(evt.DMs) > 0 {
		b.logger.Infof("Your open DM's: %s", conversationNames(evt.DMs))
	}
}

func (b *Bot) handleMessage(ctx context.Context, evt *MessageEvent) {
	if evt == nil || evt.Type != EventTypeMessage {
		return
	}
	ctx = AddMessageToContext(AddBotToContext(ctx, b), evt)
	var match RouteMatch
	if matched, newCtx := b.Match(ctx, &match); matched && match.Handler != nil {
		match.Handler(newCtx)
	}
}

// Respond registers a route answering mentions that contain rule's phrase
// with one of its candidates.
func (b *Bot) Respond(rule TriggerRule) error {
	r, err := NewResponder(rule)
	if err != nil {
		return err
	}
	b.RespondWith(r)
	return nil
}

// RespondWith registers a route for an already built Responder.
func (b *Bot) RespondWith(r *Responder) *Route {
	return b.Messages(Mention).AddMatcher(r).MessageHandler(func(ctx context.Context, bot *Bot, evt *MessageEvent) {
		if r.Respond(bot.session, evt) {
			bot.logger.WithFields(log.Fields{
				"channel": evt.Channel,
				"phrase":  r.Rule().Phrase,
			}).Debug("replied to mention")
		}
	})
}

// SetLogger sets the bot's logger to a custom one
func (b *Bot) SetLogger(l *log.Logger) {
	b.logger = l
}

// Reply replies to a message event with a simple message.
func (b *Bot) Reply(evt *MessageEvent, msg string) {
	b.session.Send(b.session.ResolveConversation(evt.Channel), msg)
}

// BotUserID fetches the Bot's user ID.
func (b *Bot) BotUserID() string {
	return b.botUserID
}

func (b *Bot) setBotID(ID string) {
	b.botUserID = ID
	b.SimpleRouter.SetBotID(ID)
}

func conversationNames(convs []Conversation) string {
	names := make([]string, 0, len(convs))
	for _, c := range convs {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}
