package gifbot

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrEmptyPhrase  = errors.New("trigger phrase is empty")
	ErrNoCandidates = errors.New("trigger has no candidate responses")
	ErrNoRules      = errors.New("no trigger rules configured")
)

// TriggerRule pairs a phrase with the responses it may produce.
//
// Phrase is a regular expression matched against the lowercased message text,
// so a plain word matches anywhere in the message regardless of case.
type TriggerRule struct {
	Phrase     string
	Candidates []string
}

// Validate checks that the rule can be used to answer messages.
func (r TriggerRule) Validate() error {
	_, err := r.compile()
	return err
}

func (r TriggerRule) compile() (*regexp.Regexp, error) {
	if r.Phrase == "" {
		return nil, ErrEmptyPhrase
	}
	if len(r.Candidates) == 0 {
		return nil, fmt.Errorf("trigger %q: %w", r.Phrase, ErrNoCandidates)
	}
	re, err := regexp.Compile("(?i)" + r.Phrase)
	if err != nil {
		return nil, fmt.Errorf("trigger %q: %w", r.Phrase, err)
	}
	return re, nil
}

// ValidateRules validates every rule, stopping at the first invalid one.
func ValidateRules(rules []TriggerRule) error {
	if len(rules) == 0 {
		return ErrNoRules
	}
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}
