package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/cforge/cforge/internal/client/models"
)

const defaultLanguage = "GNU G++17"

// Submit records a simulated submission for a problem and renders the
// verdict. The problem is resolved from the cached archive when possible
// so the recorded entry carries its title and tags.
func (a *App) Submit(ctx context.Context, args []string) error {
	contestID, index, err := parseProblemArgs(args, "submit")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	language := defaultLanguage
	if len(args) > 2 {
		language = strings.Join(args[2:], " ")
	}

	problem := a.lookupProblem(contestID, index)
	sub := a.submissions.Submit(ctx, problem, language)

	printlnFn(fmt.Sprintf("%s: %d/%d tests passed (%s)",
		sub.Verdict.Label(), sub.PassedTestCount, sub.TestCount, sub.Language))
	return nil
}

// History renders the recorded submissions of a problem, newest first.
func (a *App) History(ctx context.Context, args []string) error {
	contestID, index, err := parseProblemArgs(args, "subs")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	subs := a.submissions.History(a.lookupProblem(contestID, index).ID())
	if len(subs) == 0 {
		printlnFn("No submissions yet.")
		return nil
	}

	for _, s := range subs {
		printlnFn(fmt.Sprintf("  %-22s %d/%d tests  %-12s %s",
			s.Verdict.Label(), s.PassedTestCount, s.TestCount, s.Language, s.TimeLabel))
	}
	return nil
}

// lookupProblem resolves a problem from the cached archive, falling back
// to a bare record when the archive was never fetched or the problem is
// not in it.
func (a *App) lookupProblem(contestID int, index string) models.Problem {
	want := models.Problem{ContestID: contestID, Index: index}
	for _, p := range a.problemCache {
		if p.ID() == want.ID() {
			return p
		}
	}
	return want
}
