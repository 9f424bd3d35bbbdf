package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cforge/cforge/internal/client/api"
)

// Profile renders the signed-in user's profile. The solved count comes
// from submission history and may be unavailable when that fetch failed;
// the rest of the profile renders regardless.
func (a *App) Profile(ctx context.Context) error {
	token := a.profileGuard.Begin()

	profile, err := a.profile.Load(ctx, a.session.Handle)
	if err != nil {
		printlnFn(api.UserMessage(err))
		return err
	}
	if !a.profileGuard.Valid(token) {
		return nil
	}

	info := profile.Info
	rank := info.Rank
	if rank == "" {
		rank = "unranked"
	}
	printlnFn(fmt.Sprintf("%s (%s)", info.Handle, rank))
	printlnFn("  rating:      ", orDash(info.Rating), "(max", orDash(info.MaxRating)+")")
	printlnFn("  contribution:", orDash(info.Contribution))

	solved := "unavailable"
	if profile.SolvedCount != nil {
		solved = strconv.Itoa(*profile.SolvedCount)
	}
	printlnFn("  solved:      ", solved)
	return nil
}

func orDash(v *int) string {
	if v == nil {
		return "n/a"
	}
	return strconv.Itoa(*v)
}
