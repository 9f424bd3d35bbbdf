// Package models contains the domain types of the client: contests,
// problems, user profiles and locally recorded submissions. All types are
// plain values; everything fetched from the platform is immutable after
// construction.
package models

import (
	"fmt"
	"strings"
	"time"
)

// ContestPhase is a contest's lifecycle stage as reported by the platform.
type ContestPhase string

const (
	PhaseBefore            ContestPhase = "BEFORE"
	PhaseCoding            ContestPhase = "CODING"
	PhasePendingSystemTest ContestPhase = "PENDING_SYSTEM_TEST"
	PhaseSystemTest        ContestPhase = "SYSTEM_TEST"
	PhaseFinished          ContestPhase = "FINISHED"
)

// Contest is a single contest from contest.list.
type Contest struct {
	ID               int
	Name             string
	Type             string
	Phase            ContestPhase
	DurationSeconds  int64
	StartTimeSeconds *int64
}

// IsRated reports whether the contest looks rated, derived from a
// case-insensitive text match on the type and name.
func (c Contest) IsRated() bool {
	return strings.Contains(strings.ToLower(c.Type), "rated") ||
		strings.Contains(strings.ToLower(c.Name), "rated")
}

// StartTime returns the announced start instant. Contests without one
// report the zero epoch.
func (c Contest) StartTime() time.Time {
	var sec int64
	if c.StartTimeSeconds != nil {
		sec = *c.StartTimeSeconds
	}
	return time.Unix(sec, 0)
}

func (c Contest) Duration() time.Duration {
	return time.Duration(c.DurationSeconds) * time.Second
}

// TimeUntilStart returns how long until the contest starts, never negative.
func (c Contest) TimeUntilStart(now time.Time) time.Duration {
	d := c.StartTime().Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

func (c Contest) ContestURL() string {
	return fmt.Sprintf("https://codeforces.com/contest/%d", c.ID)
}

func (c Contest) RegistrationURL() string {
	return fmt.Sprintf("https://codeforces.com/contestRegistration/%d", c.ID)
}
