package form

import (
	"fmt"
	"unicode/utf8"
)

// CounterLevel flags how close the message is to its maximum length.
type CounterLevel int

const (
	CounterNormal CounterLevel = iota
	CounterNearLimit
	CounterAtLimit
)

func (l CounterLevel) String() string {
	switch l {
	case CounterNearLimit:
		return "near-limit"
	case CounterAtLimit:
		return "at-limit"
	default:
		return "normal"
	}
}

// Counter is the rendered state of the message character counter.
type Counter struct {
	Length int
	Max    int
	Level  CounterLevel
}

// Text renders the counter label.
func (c Counter) Text() string {
	return fmt.Sprintf("%d / %d characters", c.Length, c.Max)
}

// Count computes the counter for the raw message text. The at-limit level
// takes precedence over near-limit.
func (r Rules) Count(text string) Counter {
	c := Counter{
		Length: utf8.RuneCountInString(text),
		Max:    r.Message.Max,
	}
	if c.Max <= 0 {
		return c
	}
	switch pct := c.Length * 100; {
	case pct >= r.AtLimitPercent*c.Max:
		c.Level = CounterAtLimit
	case pct >= r.NearLimitPercent*c.Max:
		c.Level = CounterNearLimit
	}
	return c
}

// UpdateCharacterCounter computes the counter with the default rules.
func UpdateCharacterCounter(text string) Counter {
	return DefaultRules().Count(text)
}
