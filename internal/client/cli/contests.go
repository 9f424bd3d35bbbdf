package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cforge/cforge/internal/client/api"
	"github.com/cforge/cforge/internal/client/filters"
	"github.com/cforge/cforge/internal/client/models"
)

// Contests fetches the upcoming contests and renders them soonest first.
// A result that arrives after a newer contest request was begun is
// discarded without rendering.
func (a *App) Contests(ctx context.Context) error {
	token := a.contestGuard.Begin()

	contests, err := a.contests.Upcoming(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err))
		return err
	}
	if !a.contestGuard.Valid(token) {
		return nil
	}

	a.renderContests(filters.ApplyContests(a.filter, contests))
	return nil
}

func (a *App) renderContests(contests []models.Contest) {
	if len(contests) == 0 {
		printlnFn("No upcoming contests.")
		return
	}

	now := time.Now()
	for _, c := range contests {
		rated := ""
		if c.IsRated() {
			rated = "  [rated]"
		}
		printlnFn(fmt.Sprintf("  %-6d %s%s", c.ID, c.Name, rated))
		printlnFn(fmt.Sprintf("         starts %s (in %s), lasts %s",
			c.StartTime().Format("Mon Jan 2, 15:04"),
			c.TimeUntilStart(now).Round(time.Minute),
			c.Duration()))
	}
	printlnFn(fmt.Sprintf("%d contest(s)", len(contests)))
}
