package gifbot

import (
	"context"
	"regexp"
)

// Route represents a route
type Route struct {
	handler    Handler
	err        error
	matchers   []Matcher
	botUserID  string
	talkToSelf bool // if set, the bot can reply to its own messages
}

func (r *Route) setBotID(botID string) {
	r.botUserID = botID
	for _, matcher := range r.matchers {
		matcher.SetBotID(botID)
	}
}

// RouteMatch stores information about a matched route.
type RouteMatch struct {
	Route   *Route
	Handler Handler
}

// Match matches
func (r *Route) Match(ctx context.Context, match *RouteMatch) (bool, context.Context) {
	if r.err != nil {
		return false, ctx
	}

	if r.handler == nil {
		return false, ctx
	}

	if ev := MessageFromContext(ctx); ev != nil && !r.talkToSelf && r.botUserID != "" && r.botUserID == ev.User {
		return false, ctx
	}

	for _, m := range r.matchers {
		var matched bool
		if matched, ctx = m.Match(ctx); !matched {
			return false, ctx
		}
	}

	match.Route = r
	match.Handler = r.handler
	return true, ctx
}

// TalkToSelf lets the route match messages sent by the bot itself.
func (r *Route) TalkToSelf() *Route {
	r.talkToSelf = true
	return r
}

// NoTalkToSelf makes the route skip the bot's own messages. This is the default.
func (r *Route) NoTalkToSelf() *Route {
	r.talkToSelf = false
	return r
}

// Hear adds a matcher for the message text
func (r *Route) Hear(regex string) *Route {
	r.addRegexpMatcher(regex)
	return r
}

// Messages sets the types of Messages we want to handle
func (r *Route) Messages(types ...MessageType) *Route {
	r.addTypesMatcher(types...)
	return r
}

// Handler sets a handler for the route.
func (r *Route) Handler(handler Handler) *Route {
	if r.err == nil {
		r.handler = handler
	}
	return r
}

// MessageHandler is a message handler
func (r *Route) MessageHandler(fn MessageHandler) *Route {
	return r.Handler(func(ctx context.Context) {
		bot := BotFromContext(ctx)
		msg := MessageFromContext(ctx)
		fn(ctx, bot, msg)
	})
}

// AddMatcher adds a matcher to the route.
func (r *Route) AddMatcher(m Matcher) *Route {
	if r.botUserID != "" {
		m.SetBotID(r.botUserID)
	}
	r.matchers = append(r.matchers, m)
	return r
}

// Err returns the error that disabled the route, such as an invalid Hear regexp.
func (r *Route) Err() error {
	return r.err
}

// RegexpMatcher is a regexp matcher
type RegexpMatcher struct {
	regex     *regexp.Regexp
	botUserID string
}

// Match matches a message
func (rm *RegexpMatcher) Match(ctx context.Context) (bool, context.Context) {
	msg := MessageFromContext(ctx)
	if msg == nil {
		return false, ctx
	}
	// A message may be preceded by a direct mention. For simplicity sake, strip out any potential direct mentions first
	text := StripDirectMention(msg.Text)
	return rm.regex.MatchString(text), ctx
}

// SetBotID sets the bot id
func (rm *RegexpMatcher) SetBotID(botID string) {
	rm.botUserID = botID
}

func (r *Route) addRegexpMatcher(regex string) {
	if r.err != nil {
		return
	}
	re, err := regexp.Compile(regex)
	if err != nil {
		r.err = err
		return
	}

	r.AddMatcher(&RegexpMatcher{regex: re})
}

// TypesMatcher is a type matcher
type TypesMatcher struct {
	types     []MessageType
	botUserID string
}

// Match matches
func (tm *TypesMatcher) Match(ctx context.Context) (bool, context.Context) {
	msg := MessageFromContext(ctx)
	if msg == nil {
		return false, ctx
	}
	for _, t := range tm.types {
		switch t {
		case DirectMessage:
			if IsDirectMessage(msg) {
				return true, ctx
			}
		case DirectMention:
			if IsDirectMention(msg, tm.botUserID) {
				return true, ctx
			}
		case Message:
			if !IsDirectMessage(msg) {
				return true, ctx
			}
		case Mention:
			if IsMentioned(msg.Text, tm.botUserID) {
				return true, ctx
			}
		}
	}
	return false, ctx
}

// SetBotID sets the botid
func (tm *TypesMatcher) SetBotID(botID string) {
	tm.botUserID = botID
}

func (r *Route) addTypesMatcher(types ...MessageType) {
	if r.err != nil {
		return
	}

	r.AddMatcher(&TypesMatcher{types: types, botUserID: r.botUserID})
}
