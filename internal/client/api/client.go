// Package api implements the Codeforces REST client: a single-GET fetch
// primitive with a classified error taxonomy, per-endpoint envelope decoders,
// bounded retry for transport failures, and the optional apiSig request
// signing scheme.
package api

import (
	"context"

	"github.com/cforge/cforge/internal/client/models"
)

// Client is the transport surface the services depend on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// ContestList fetches all contests, every phase included.
	ContestList(ctx context.Context) ([]models.Contest, error)

	// Problems fetches the whole problem set with solve counts merged in.
	Problems(ctx context.Context) ([]models.Problem, error)

	// ProblemStatement fetches the statement body of one problem. When the
	// platform has no statement for it, StatementUnavailable is returned
	// with a nil error.
	ProblemStatement(ctx context.Context, contestID int, index string) (string, error)

	// UserInfo fetches the profile for a single handle.
	// Returns ErrHandleNotFound when the platform knows no such user.
	UserInfo(ctx context.Context, handle string) (*models.UserProfile, error)

	// UserStatus fetches the user's submission history.
	UserStatus(ctx context.Context, handle string) ([]models.HistoryEntry, error)
}
