package tasks

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Schedule computes run times from an RFC 5545 recurrence rule, e.g. "FREQ=MINUTELY;INTERVAL=5"
type Schedule struct {
	rule *rrule.RRule
}

// ParseSchedule parses rule with start as the first occurrence
func ParseSchedule(rule string, start time.Time) (*Schedule, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", rule, err)
	}
	r.DTStart(start)
	return &Schedule{rule: r}, nil
}

// Next returns the first occurrence strictly after t, or the zero time when the rule
// has no more occurrences
func (s *Schedule) Next(t time.Time) time.Time {
	return s.rule.After(t, false)
}
