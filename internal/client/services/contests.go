// Package services contains the application services of the client: they
// call the API client, apply the decoder-adjacent policies (upcoming-only
// contests, solved-count aggregation) and hand view-ready collections to
// the UI layer.
package services

import (
	"context"

	"github.com/cforge/cforge/internal/client/api"
	"github.com/cforge/cforge/internal/client/models"
)

// ContestService serves the contest list screen.
type ContestService interface {
	// Upcoming returns the contests that have not started yet. Filtering
	// out in-progress and finished contests happens here, not in the UI.
	Upcoming(ctx context.Context) ([]models.Contest, error)
}

type contestService struct {
	client api.Client
}

func NewContestService(client api.Client) ContestService {
	return &contestService{client: client}
}

func (s *contestService) Upcoming(ctx context.Context) ([]models.Contest, error) {
	contests, err := s.client.ContestList(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := make([]models.Contest, 0, len(contests))
	for _, c := range contests {
		if c.Phase == models.PhaseBefore {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming, nil
}
