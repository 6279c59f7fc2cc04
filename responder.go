package gifbot

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
)

// ResponderOption configures a Responder.
type ResponderOption func(*Responder)

// WithRandom replaces the source used to pick a candidate. intn must return a
// value in [0, n).
func WithRandom(intn func(n int) int) ResponderOption {
	return func(r *Responder) {
		r.intn = intn
	}
}

// Responder answers messages matching a single TriggerRule.
// It holds no per-message state and is safe for concurrent use.
type Responder struct {
	rule    TriggerRule
	pattern *regexp.Regexp
	intn    func(n int) int
}

// NewResponder validates rule and returns a Responder for it.
func NewResponder(rule TriggerRule, opts ...ResponderOption) (*Responder, error) {
	re, err := rule.compile()
	if err != nil {
		return nil, err
	}
	r := &Responder{
		rule:    rule,
		pattern: re,
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Rule returns the rule r answers.
func (r *Responder) Rule() TriggerRule {
	return r.rule
}

// Matches reports whether text contains the trigger phrase.
func (r *Responder) Matches(text string) bool {
	if text == "" {
		return false
	}
	return r.pattern.MatchString(strings.ToLower(text))
}

// Pick returns one of the candidates.
func (r *Responder) Pick() string {
	if len(r.rule.Candidates) == 1 {
		return r.rule.Candidates[0]
	}
	return r.rule.Candidates[r.intn(len(r.rule.Candidates))]
}

// Respond sends one picked candidate to the conversation evt came from if
// its text contains the trigger phrase. It reports whether it sent anything.
func (r *Responder) Respond(s Sender, evt *MessageEvent) bool {
	if !HasText(evt) || !r.Matches(evt.Text) {
		return false
	}
	s.Send(s.ResolveConversation(evt.Channel), r.Pick())
	return true
}

// Match lets a Responder act as a route Matcher.
func (r *Responder) Match(ctx context.Context) (bool, context.Context) {
	msg := MessageFromContext(ctx)
	return msg != nil && r.Matches(msg.Text), ctx
}

// SetBotID is a no-op; trigger matching does not depend on the bot identity.
func (r *Responder) SetBotID(string) {}
