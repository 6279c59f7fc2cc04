// Package rtm drives a gifbot.Session over Slack's Real Time Messaging API.
package rtm

import (
	"context"
	"errors"
	stdlog "log"

	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/flw-cn/go-gifbot"
)

// ErrInvalidAuth is returned by Run when Slack rejects the token.
var ErrInvalidAuth = errors.New("rtm: invalid credentials")

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger to use
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithClient sets a custom slack client to use
func WithClient(c *slack.Client) Option {
	return func(s *Session) {
		s.client = c
	}
}

// Session is a gifbot.Session backed by a slack RTM connection.
//
// The conversation cache is only touched from the Run goroutine, which is
// also where handlers run.
type Session struct {
	client *slack.Client
	rtm    *slack.RTM
	logger *log.Logger

	openHandlers    []gifbot.OpenHandler
	messageHandlers []gifbot.EventHandler
	conversations   map[string]gifbot.Conversation
}

var _ gifbot.Session = (*Session)(nil)

// New creates a session authorized with token.
func New(token string, opts ...Option) *Session {
	s := &Session{conversations: make(map[string]gifbot.Conversation)}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New()
	}
	if s.client == nil {
		s.client = slack.New(token,
			slack.OptionDebug(s.logger.IsLevelEnabled(log.DebugLevel)),
			slack.OptionLog(stdlog.New(s.logger.WriterLevel(log.DebugLevel), "slack: ", stdlog.Lshortfile)),
		)
	}
	return s
}

// OnOpen registers h to be called on every (re)connection.
func (s *Session) OnOpen(h gifbot.OpenHandler) {
	s.openHandlers = append(s.openHandlers, h)
}

// OnMessage registers h to be called for each incoming message.
func (s *Session) OnMessage(h gifbot.EventHandler) {
	s.messageHandlers = append(s.messageHandlers, h)
}

// Run listens for incoming slack RTM events until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.rtm = s.client.NewRTM()
	go s.rtm.ManageConnection()
	defer func() {
		if err := s.rtm.Disconnect(); err != nil {
			s.logger.WithError(err).Debug("disconnect")
		}
	}()

	for {
		select {
		case msg, ok := <-s.rtm.IncomingEvents:
			if !ok {
				return nil
			}
			switch ev := msg.Data.(type) {
			case *slack.ConnectedEvent:
				s.handleConnected(ev)
			case *slack.MessageEvent:
				evt := convertMessage(ev)
				for _, h := range s.messageHandlers {
					h(evt)
				}
			case *slack.RTMError:
				s.logger.Error(ev.Error())
			case *slack.InvalidAuthEvent:
				s.logger.Error("Invalid credentials")
				return ErrInvalidAuth
			}
		case <-ctx.Done():
			s.logger.Debug("Quit event received.")
			return nil
		}
	}
}

func (s *Session) handleConnected(ev *slack.ConnectedEvent) {
	open := &gifbot.OpenEvent{}
	if ev.Info != nil {
		if ev.Info.User != nil {
			open.Self = gifbot.User{ID: ev.Info.User.ID, Name: ev.Info.User.Name}
		}
		if ev.Info.Team != nil {
			open.Team = gifbot.Team{ID: ev.Info.Team.ID, Name: ev.Info.Team.Name, Domain: ev.Info.Team.Domain}
		}
	}
	s.logger.WithField("connections", ev.ConnectionCount).Debugf("Connected: %#v", open.Self)

	channels, err := s.listConversations()
	if err != nil {
		s.logger.WithError(err).Warn("listing conversations")
	}
	open.Channels, open.Groups, open.DMs = splitConversations(channels)
	for _, list := range [][]gifbot.Conversation{open.Channels, open.Groups, open.DMs} {
		for _, c := range list {
			s.conversations[c.ID] = c
		}
	}

	for _, h := range s.openHandlers {
		h(open)
	}
}

func (s *Session) listConversations() ([]slack.Channel, error) {
	params := &slack.GetConversationsForUserParameters{
		Types:           []string{"public_channel", "private_channel", "mpim", "im"},
		ExcludeArchived: true,
		Limit:           200,
	}
	var all []slack.Channel
	for {
		channels, cursor, err := s.client.GetConversationsForUser(params)
		if err != nil {
			return all, err
		}
		all = append(all, channels...)
		if cursor == "" {
			return all, nil
		}
		params.Cursor = cursor
	}
}

// Send posts text to conv. Failures surface as RTMError events.
func (s *Session) Send(conv gifbot.Conversation, text string) {
	if s.rtm == nil {
		s.logger.WithField("channel", conv.ID).Warn("send before connect dropped")
		return
	}
	s.rtm.SendMessage(s.rtm.NewOutgoingMessage(text, conv.ID))
}

// ResolveConversation returns the cached conversation for id, or a bare
// handle when the bot has not seen it yet.
func (s *Session) ResolveConversation(id string) gifbot.Conversation {
	if c, ok := s.conversations[id]; ok {
		return c
	}
	return gifbot.Conversation{ID: id, Kind: gifbot.ConversationKindFromID(id)}
}
