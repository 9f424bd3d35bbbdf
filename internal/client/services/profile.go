package services

import (
	"context"
	"sync"

	"github.com/cforge/cforge/internal/client/api"
	"github.com/cforge/cforge/internal/client/models"
	"github.com/cforge/cforge/internal/logging"
)

// ProfileService aggregates a user's profile screen from two independent
// fetches: user.info and user.status.
type ProfileService interface {
	Load(ctx context.Context, handle string) (*models.Profile, error)
}

type profileService struct {
	client api.Client
	log    logging.Logger
}

func NewProfileService(client api.Client, log logging.Logger) ProfileService {
	return &profileService{client: client, log: log}
}

// Load runs the two fetches concurrently and joins them without failing
// fast: an info failure is terminal, a history failure only degrades the
// solved count to unknown. The count is the number of distinct
// (contestId, index) pairs with an accepted verdict.
func (s *profileService) Load(ctx context.Context, handle string) (*models.Profile, error) {
	var (
		wg         sync.WaitGroup
		info       *models.UserProfile
		infoErr    error
		history    []models.HistoryEntry
		historyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		info, infoErr = s.client.UserInfo(ctx, handle)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = s.client.UserStatus(ctx, handle)
	}()
	wg.Wait()

	if infoErr != nil {
		return nil, infoErr
	}

	profile := &models.Profile{Info: *info}
	if historyErr != nil {
		s.log.Warn(ctx, "submission history unavailable, solved count unknown",
			"handle", handle, "error", historyErr)
		return profile, nil
	}

	count := solvedCount(history)
	profile.SolvedCount = &count
	return profile, nil
}

func solvedCount(history []models.HistoryEntry) int {
	solved := make(map[string]struct{})
	for _, e := range history {
		if e.Verdict.IsAccepted() {
			solved[e.Problem.ID()] = struct{}{}
		}
	}
	return len(solved)
}
