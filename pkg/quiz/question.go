package quiz

import (
	"errors"
	"fmt"
)

var ErrInvalidBank = errors.New("invalid question bank")

type Option struct {
	Value   string     `yaml:"value" json:"value"`
	Label   string     `yaml:"label" json:"label"`
	Profile ProfileKey `yaml:"profile" json:"profile"`
}

type Question struct {
	ID      string   `yaml:"id" json:"id"`
	Title   string   `yaml:"title" json:"title"`
	Options []Option `yaml:"options" json:"options"`
}

// Option returns the option with the given value.
func (q Question) Option(value string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// ValidateBank checks that question ids are unique, every question has at
// least two options with unique values, and every option maps to a known
// profile.
func ValidateBank(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidBank)
	}
	ids := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question %d has no id", ErrInvalidBank, i)
		}
		if ids[q.ID] {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidBank, q.ID)
		}
		ids[q.ID] = true

		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %q needs at least 2 options", ErrInvalidBank, q.ID)
		}
		values := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt.Value == "" || values[opt.Value] {
				return fmt.Errorf("%w: question %q has an empty or duplicate option %q", ErrInvalidBank, q.ID, opt.Value)
			}
			values[opt.Value] = true
			if !opt.Profile.Valid() {
				return fmt.Errorf("%w: option %q of %q has unknown profile %q", ErrInvalidBank, opt.Value, q.ID, opt.Profile)
			}
		}
	}
	return nil
}
