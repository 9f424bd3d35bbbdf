package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cforge/cforge/internal/client/api"
	"github.com/cforge/cforge/internal/client/filters"
	"github.com/cforge/cforge/internal/client/models"
)

// maxProblemRows caps how many archive rows a single render prints. The
// archive holds thousands of problems; the count line shows the rest.
const maxProblemRows = 25

// Problems fetches the problem archive and renders it with the current
// filter selection applied. The fetched collection is cached so that
// search and tag commands re-filter locally without another fetch.
func (a *App) Problems(ctx context.Context) error {
	token := a.problemGuard.Begin()

	problems, err := a.problems.All(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err))
		return err
	}
	if !a.problemGuard.Valid(token) {
		return nil
	}

	a.problemCache = problems
	a.renderProblems()
	return nil
}

// Search replaces the free-text query and re-renders the archive. An empty
// query clears the filter. The archive is fetched on first use.
func (a *App) Search(ctx context.Context, query string) error {
	a.filter = a.filter.WithQuery(query)
	return a.refilter(ctx)
}

// Tag toggles a tag in the filter selection: selecting the active tag
// clears it, selecting a different one replaces it.
func (a *App) Tag(ctx context.Context, tag string) error {
	a.filter = a.filter.ToggleTag(tag)
	return a.refilter(ctx)
}

func (a *App) refilter(ctx context.Context) error {
	if a.problemCache == nil {
		return a.Problems(ctx)
	}
	a.renderProblems()
	return nil
}

func (a *App) renderProblems() {
	filtered := filters.ApplyProblems(a.filter, a.problemCache)

	shown := filtered
	if len(shown) > maxProblemRows {
		shown = shown[:maxProblemRows]
	}
	for _, p := range shown {
		printlnFn(" ", problemRow(p))
	}

	line := fmt.Sprintf("%d of %d problem(s)", len(filtered), len(a.problemCache))
	if len(filtered) > maxProblemRows {
		line += fmt.Sprintf(", showing first %d", maxProblemRows)
	}
	if a.filter.Query != "" {
		line += fmt.Sprintf(", query %q", a.filter.Query)
	}
	if a.filter.Tag != "" {
		line += fmt.Sprintf(", tag %q", a.filter.Tag)
	}
	printlnFn(line)
}

func problemRow(p models.Problem) string {
	rating := "unrated"
	if p.Rating != nil {
		rating = strconv.Itoa(*p.Rating)
	}
	row := fmt.Sprintf("%-7s %-50s %s", p.ID(), p.Title, rating)
	if len(p.Tags) > 0 {
		row += "  [" + strings.Join(p.Tags, ", ") + "]"
	}
	return row
}

// Statement shows the statement text of a single problem.
func (a *App) Statement(ctx context.Context, args []string) error {
	contestID, index, err := parseProblemArgs(args, "statement")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	statement, err := a.problems.Statement(ctx, contestID, index)
	if err != nil {
		printlnFn(api.UserMessage(err))
		return err
	}

	printlnFn(statement)
	return nil
}

// parseProblemArgs reads the "<contest> <index>" argument pair shared by
// the problem-scoped commands. The index is normalized to upper case.
func parseProblemArgs(args []string, cmd string) (int, string, error) {
	if len(args) < 2 {
		return 0, "", fmt.Errorf("Usage: %s <contest> <index>", cmd)
	}
	contestID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, "", fmt.Errorf("%q is not a contest number", args[0])
	}
	return contestID, strings.ToUpper(args[1]), nil
}
